package game

import (
	"time"

	"github.com/vs-123/snakey/internal/core"
)

// Valid ranges for settings values. Writes clamp to these, so
// out-of-range values are never representable.
const (
	MinInitialLength = 1
	MaxInitialLength = 10
	MinTickMs        = 50
	MaxTickMs        = 500
)

// Settings holds the tunables mutated through the settings screen and
// read by the machine every tick. They persist across sessions within
// one run, not across runs.
type Settings struct {
	initialLength int
	tickMs        int
	wrap          bool
}

// NewSettings creates settings with the given values, clamped to their
// valid ranges.
func NewSettings(initialLength, tickMs int, wrap bool) Settings {
	var s Settings
	s.SetInitialLength(initialLength)
	s.SetTickMs(tickMs)
	s.SetWrap(wrap)
	return s
}

// InitialLength returns the configured initial snake length.
func (s Settings) InitialLength() int {
	return s.initialLength
}

// SetInitialLength clamps to [1, 10].
func (s *Settings) SetInitialLength(n int) {
	s.initialLength = core.Clamp(n, MinInitialLength, MaxInitialLength)
}

// TickMs returns the tick interval in milliseconds.
func (s Settings) TickMs() int {
	return s.tickMs
}

// SetTickMs clamps to [50, 500].
func (s *Settings) SetTickMs(ms int) {
	s.tickMs = core.Clamp(ms, MinTickMs, MaxTickMs)
}

// TickInterval returns the tick interval as a duration.
func (s Settings) TickInterval() time.Duration {
	return time.Duration(s.tickMs) * time.Millisecond
}

// Wrap reports whether wrap-around boundaries are enabled.
func (s Settings) Wrap() bool {
	return s.wrap
}

// SetWrap toggles the wrap-around boundary policy.
func (s *Settings) SetWrap(on bool) {
	s.wrap = on
}

// LengthRatio returns the initial length as a 0..1 slider position.
func (s Settings) LengthRatio() float64 {
	return float64(s.initialLength-MinInitialLength) / float64(MaxInitialLength-MinInitialLength)
}

// TickRatio returns the tick interval as a 0..1 slider position.
func (s Settings) TickRatio() float64 {
	return float64(s.tickMs-MinTickMs) / float64(MaxTickMs-MinTickMs)
}

// setLengthFromRatio maps a 0..1 slider position onto the length range.
func (s *Settings) setLengthFromRatio(pos float64) {
	pos = core.ClampF(pos, 0, 1)
	s.SetInitialLength(MinInitialLength + int(pos*float64(MaxInitialLength-MinInitialLength)))
}

// setTickFromRatio maps a 0..1 slider position onto the tick range.
func (s *Settings) setTickFromRatio(pos float64) {
	pos = core.ClampF(pos, 0, 1)
	s.SetTickMs(MinTickMs + int(pos*float64(MaxTickMs-MinTickMs)))
}
