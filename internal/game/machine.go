package game

import (
	"math/rand"
	"time"

	"github.com/vs-123/snakey/internal/core"
)

// DefaultCountdown is the pre-game countdown duration.
const DefaultCountdown = 3 * time.Second

// Config is the machine's construction-time configuration.
type Config struct {
	Grid      core.Grid
	Countdown time.Duration // zero means DefaultCountdown
	Seed      int64         // zero means time-based, resolved by the caller
	Defaults  Settings
}

// Result is returned by Machine.Update after each frame.
type Result struct {
	State  State
	Ticked bool // a simulation tick executed this frame
}

// Machine owns the application state, the previous state (for "back"
// navigation from Settings), the countdown deadline, the tick timestamp,
// and the tunable settings. It orchestrates Snake and Food according to
// the active state and elapsed time, and is the sole authority for state
// transitions.
type Machine struct {
	state State
	prev  State

	grid      core.Grid
	countdown time.Duration
	settings  Settings
	binds     *KeyBindings

	rng   *rand.Rand
	snake *Snake
	food  *Food

	countdownStart time.Time
	lastTick       time.Time

	best       int
	editing    Action
	isEditing  bool
	terminated bool
}

// NewMachine creates a machine in the start menu.
func NewMachine(cfg Config) *Machine {
	if cfg.Countdown <= 0 {
		cfg.Countdown = DefaultCountdown
	}
	return &Machine{
		state:     StateStartMenu,
		prev:      StateStartMenu,
		grid:      cfg.Grid,
		countdown: cfg.Countdown,
		settings:  cfg.Defaults,
		binds:     DefaultKeyBindings(),
		rng:       rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Update advances the machine by one frame. Each frame dispatches to
// exactly one per-state routine; the shell then renders based on the
// same state.
func (m *Machine) Update(now time.Time, in Frame) Result {
	ticked := false

	switch m.state {
	case StateStartMenu:
		m.updateStartMenu(now, in)
	case StateSettings:
		m.updateSettings(in)
	case StateKeybinds:
		m.updateKeybinds(in)
	case StateCountdown:
		m.updateCountdown(now)
	case StatePlaying:
		ticked = m.updatePlaying(now, in)
	case StatePause:
		m.updatePause(in)
	case StateConfirmRestart:
		m.updateConfirmRestart(now, in)
	case StateConfirmMainMenu:
		m.updateConfirmMainMenu(in)
	case StateGameOver:
		m.updateGameOver(in)
	}

	return Result{State: m.state, Ticked: ticked}
}

func (m *Machine) updateStartMenu(now time.Time, in Frame) {
	switch in.Command {
	case CmdPlay:
		m.countdownStart = now
		m.state = StateCountdown
	case CmdSettings:
		m.prev = StateStartMenu
		m.state = StateSettings
	case CmdQuit:
		m.terminated = true
	}
}

func (m *Machine) updateSettings(in Frame) {
	switch in.Slider.Control {
	case SliderLength:
		m.settings.setLengthFromRatio(in.Slider.Pos)
	case SliderTick:
		m.settings.setTickFromRatio(in.Slider.Pos)
	}

	switch in.Command {
	case CmdToggleWrap:
		m.settings.SetWrap(!m.settings.Wrap())
	case CmdKeybinds:
		m.state = StateKeybinds
	case CmdBack:
		m.state = m.prev
	}
}

func (m *Machine) updateKeybinds(in Frame) {
	if in.Command == CmdBind {
		m.editing = in.BindAction
		m.isEditing = true
		return
	}

	if m.isEditing && in.RawKey != "" {
		m.binds.Rebind(m.editing, in.RawKey)
		m.isEditing = false
		return
	}

	if in.Command == CmdBack {
		m.isEditing = false
		m.state = StateSettings
	}
}

func (m *Machine) updateCountdown(now time.Time) {
	if now.Sub(m.countdownStart) >= m.countdown {
		m.startSession(now)
		m.state = StatePlaying
	}
}

// startSession constructs a fresh Snake and Food and resets the tick
// timer. Playing is only reachable through here, so the session is never
// uninitialized.
func (m *Machine) startSession(now time.Time) {
	m.snake = NewSnake(m.settings.InitialLength(), m.grid)
	if m.food == nil {
		m.food = NewFood(m.rng, m.grid)
	} else {
		m.food.Respawn(m.rng, m.grid)
	}
	m.lastTick = now
}

func (m *Machine) updatePlaying(now time.Time, in Frame) bool {
	if in.Pressed(ActionPause) {
		m.state = StatePause
		return false
	}

	// A new tick runs only when the interval has elapsed; lastTick is
	// set to now rather than advanced by the interval, so a long stall
	// between frames never fires catch-up ticks.
	if now.Sub(m.lastTick) < m.settings.TickInterval() {
		return false
	}
	m.lastTick = now
	m.tick(in)
	return true
}

// tick runs one simulation step: sample movement, advance, apply the
// boundary policy, check self-collision, consume food.
func (m *Machine) tick(in Frame) {
	// At most one direction change per tick, fixed priority, first
	// held action wins. SetDirection rejects exact reversals.
	switch {
	case in.Held(ActionUp):
		m.snake.SetDirection(DirUp)
	case in.Held(ActionDown):
		m.snake.SetDirection(DirDown)
	case in.Held(ActionLeft):
		m.snake.SetDirection(DirLeft)
	case in.Held(ActionRight):
		m.snake.SetDirection(DirRight)
	}

	m.snake.Advance()

	head := m.snake.Head()
	if m.settings.Wrap() {
		if !m.grid.Contains(head) {
			m.snake.SetHead(m.grid.Wrap(head))
		}
	} else if !m.grid.Contains(head) {
		m.gameOver()
		return
	}

	if m.snake.HasSelfCollision() {
		m.gameOver()
		return
	}

	if m.snake.Head() == m.food.Position() {
		m.snake.Grow()
		m.food.Respawn(m.rng, m.grid)
	}
}

// gameOver records the final length against the running best and ends
// the session. Fatal collisions are never retried or recovered.
func (m *Machine) gameOver() {
	if n := m.snake.Length(); n > m.best {
		m.best = n
	}
	m.state = StateGameOver
}

func (m *Machine) updatePause(in Frame) {
	if in.Pressed(ActionResume) || in.Command == CmdResume {
		m.state = StatePlaying
		return
	}

	switch in.Command {
	case CmdSettings:
		m.prev = StatePause
		m.state = StateSettings
	case CmdRestart:
		m.state = StateConfirmRestart
	case CmdMainMenu:
		m.state = StateConfirmMainMenu
	}
}

func (m *Machine) updateConfirmRestart(now time.Time, in Frame) {
	switch in.Command {
	case CmdYes:
		m.startSession(now)
		m.state = StatePlaying
	case CmdNo:
		m.state = StatePause
	}
}

func (m *Machine) updateConfirmMainMenu(in Frame) {
	switch in.Command {
	case CmdYes:
		m.state = StateStartMenu
	case CmdNo:
		m.state = StatePause
	}
}

func (m *Machine) updateGameOver(in Frame) {
	if in.Command != CmdNone {
		m.state = StateStartMenu
	}
}

// --- Render-facing queries ---

// State returns the active application state.
func (m *Machine) State() State {
	return m.state
}

// Grid returns the playfield extents.
func (m *Machine) Grid() core.Grid {
	return m.grid
}

// Segments returns the snake's cells head-first, or nil when no session
// is live.
func (m *Machine) Segments() []core.Point {
	if m.snake == nil {
		return nil
	}
	return m.snake.Segments()
}

// SnakeLength returns the current snake length, or 0 with no session.
func (m *Machine) SnakeLength() int {
	if m.snake == nil {
		return 0
	}
	return m.snake.Length()
}

// FoodPosition returns the food cell. Only meaningful during a session.
func (m *Machine) FoodPosition() core.Point {
	if m.food == nil {
		return core.Point{}
	}
	return m.food.Position()
}

// CountdownRemaining returns the time left before play begins, never
// negative.
func (m *Machine) CountdownRemaining(now time.Time) time.Duration {
	rem := m.countdown - now.Sub(m.countdownStart)
	if rem < 0 {
		rem = 0
	}
	return rem
}

// Best returns the longest length recorded across sessions this run.
func (m *Machine) Best() int {
	return m.best
}

// Settings returns a copy of the current settings for display.
func (m *Machine) Settings() Settings {
	return m.settings
}

// Bindings returns the live key bindings.
func (m *Machine) Bindings() *KeyBindings {
	return m.binds
}

// EditingAction returns the action awaiting a rebind key, if any.
func (m *Machine) EditingAction() (Action, bool) {
	return m.editing, m.isEditing
}

// Terminated reports whether the user quit from the start menu.
func (m *Machine) Terminated() bool {
	return m.terminated
}
