package game

import (
	"testing"
	"time"
)

func TestSettingsClamping(t *testing.T) {
	tests := []struct {
		name       string
		length     int
		tickMs     int
		wantLength int
		wantTick   int
	}{
		{"in range", 5, 200, 5, 200},
		{"below minimums", 0, 10, 1, 50},
		{"above maximums", 99, 9999, 10, 500},
		{"at bounds", 1, 500, 1, 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSettings(tc.length, tc.tickMs, false)
			if s.InitialLength() != tc.wantLength {
				t.Errorf("InitialLength() = %d, expected %d", s.InitialLength(), tc.wantLength)
			}
			if s.TickMs() != tc.wantTick {
				t.Errorf("TickMs() = %d, expected %d", s.TickMs(), tc.wantTick)
			}
		})
	}
}

func TestSettingsRatioMapping(t *testing.T) {
	tests := []struct {
		name       string
		pos        float64
		wantLength int
		wantTick   int
	}{
		{"track start", 0.0, 1, 50},
		{"track end", 1.0, 10, 500},
		{"midpoint", 0.5, 5, 275},
		{"below track clamps", -0.3, 1, 50},
		{"past track clamps", 1.7, 10, 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var s Settings
			s.setLengthFromRatio(tc.pos)
			s.setTickFromRatio(tc.pos)
			if s.InitialLength() != tc.wantLength {
				t.Errorf("length at pos %.2f = %d, expected %d", tc.pos, s.InitialLength(), tc.wantLength)
			}
			if s.TickMs() != tc.wantTick {
				t.Errorf("tick at pos %.2f = %d, expected %d", tc.pos, s.TickMs(), tc.wantTick)
			}
		})
	}
}

func TestSettingsBucketMidpoints(t *testing.T) {
	// The midpoint of each value's track bucket maps to exactly that
	// value despite the truncating conversion.
	for n := MinInitialLength; n <= MaxInitialLength; n++ {
		pos := (float64(n-MinInitialLength) + 0.5) / float64(MaxInitialLength-MinInitialLength)
		var s Settings
		s.setLengthFromRatio(pos)
		if s.InitialLength() != n {
			t.Errorf("midpoint for length %d mapped to %d", n, s.InitialLength())
		}
	}
}

func TestTickInterval(t *testing.T) {
	s := NewSettings(3, 120, false)
	if s.TickInterval() != 120*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 120ms", s.TickInterval())
	}
}
