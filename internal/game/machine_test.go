package game

import (
	"testing"
	"time"

	"github.com/vs-123/snakey/internal/core"
)

func testMachineConfig() Config {
	return Config{
		Grid:      core.Grid{W: 40, H: 30},
		Countdown: 3 * time.Second,
		Seed:      1,
		Defaults:  NewSettings(3, 100, true),
	}
}

func commandFrame(c Command) Frame {
	f := NewFrame()
	f.Command = c
	return f
}

// startPlaying drives a fresh machine through the countdown into a live
// session and returns the time of the last update.
func startPlaying(t *testing.T, m *Machine, now time.Time) time.Time {
	t.Helper()

	m.Update(now, commandFrame(CmdPlay))
	if m.State() != StateCountdown {
		t.Fatalf("state after play = %v, expected countdown", m.State())
	}

	now = now.Add(3 * time.Second)
	m.Update(now, NewFrame())
	if m.State() != StatePlaying {
		t.Fatalf("state after countdown = %v, expected playing", m.State())
	}
	return now
}

func TestCountdownGatesSessionStart(t *testing.T) {
	m := NewMachine(testMachineConfig())
	now := time.Unix(0, 0)

	m.Update(now, commandFrame(CmdPlay))

	// Partial countdown: still counting, no session yet
	m.Update(now.Add(2999*time.Millisecond), NewFrame())
	if m.State() != StateCountdown {
		t.Fatalf("state at 2999ms = %v, expected countdown", m.State())
	}
	if m.SnakeLength() != 0 {
		t.Error("session constructed before countdown finished")
	}

	m.Update(now.Add(3*time.Second), NewFrame())
	if m.State() != StatePlaying {
		t.Fatalf("state at 3s = %v, expected playing", m.State())
	}
	if m.SnakeLength() != 3 {
		t.Errorf("SnakeLength() = %d, expected configured initial 3", m.SnakeLength())
	}
}

func TestCountdownRemaining(t *testing.T) {
	m := NewMachine(testMachineConfig())
	now := time.Unix(100, 0)
	m.Update(now, commandFrame(CmdPlay))

	if got := m.CountdownRemaining(now.Add(1 * time.Second)); got != 2*time.Second {
		t.Errorf("remaining at 1s = %v, expected 2s", got)
	}
	if got := m.CountdownRemaining(now.Add(10 * time.Second)); got != 0 {
		t.Errorf("remaining past deadline = %v, expected 0", got)
	}
}

func TestTickGating(t *testing.T) {
	m := NewMachine(testMachineConfig())
	now := startPlaying(t, m, time.Unix(0, 0))
	head := m.Segments()[0]

	// Before the interval elapses nothing moves
	res := m.Update(now.Add(40*time.Millisecond), NewFrame())
	if res.Ticked {
		t.Error("ticked at 40ms with a 100ms interval")
	}
	if m.Segments()[0] != head {
		t.Error("snake moved without a tick")
	}

	res = m.Update(now.Add(100*time.Millisecond), NewFrame())
	if !res.Ticked {
		t.Fatal("no tick at the 100ms interval")
	}
	if got := m.Segments()[0]; got != (core.Point{X: head.X + 1, Y: head.Y}) {
		t.Errorf("head = %v after tick, expected one step right", got)
	}
}

func TestNoCatchUpTicks(t *testing.T) {
	m := NewMachine(testMachineConfig())
	now := startPlaying(t, m, time.Unix(0, 0))
	head := m.Segments()[0]

	// A long stall runs exactly one tick, not the backlog
	res := m.Update(now.Add(5*time.Second), NewFrame())
	if !res.Ticked {
		t.Fatal("no tick after stall")
	}
	if got := m.Segments()[0]; got != (core.Point{X: head.X + 1, Y: head.Y}) {
		t.Errorf("head = %v, expected a single step", got)
	}
}

func TestHeldMovementPriority(t *testing.T) {
	m := NewMachine(testMachineConfig())
	now := startPlaying(t, m, time.Unix(0, 0))

	// Up and down held together: up wins
	f := NewFrame()
	f.Hold(ActionDown)
	f.Hold(ActionUp)
	head := m.Segments()[0]
	m.Update(now.Add(100*time.Millisecond), f)

	if got := m.Segments()[0]; got != (core.Point{X: head.X, Y: head.Y - 1}) {
		t.Errorf("head = %v, expected one step up", got)
	}
}

func TestWrapAroundEdges(t *testing.T) {
	tests := []struct {
		name string
		head core.Point
		dir  Direction
		want core.Point
	}{
		{"right edge", core.Point{X: 39, Y: 10}, DirRight, core.Point{X: 0, Y: 10}},
		{"left edge", core.Point{X: 0, Y: 10}, DirLeft, core.Point{X: 39, Y: 10}},
		{"top edge", core.Point{X: 10, Y: 0}, DirUp, core.Point{X: 10, Y: 29}},
		{"bottom edge", core.Point{X: 10, Y: 29}, DirDown, core.Point{X: 10, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMachine(testMachineConfig())
			now := startPlaying(t, m, time.Unix(0, 0))

			m.snake = &Snake{segments: []core.Point{tc.head}, dir: tc.dir}
			m.food = &Food{pos: core.Point{X: 20, Y: 20}}

			m.Update(now.Add(100*time.Millisecond), NewFrame())

			if m.State() != StatePlaying {
				t.Fatalf("state = %v, expected playing after wrap", m.State())
			}
			if got := m.Segments()[0]; got != tc.want {
				t.Errorf("head = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestBoundaryFatalWithoutWrap(t *testing.T) {
	cfg := testMachineConfig()
	cfg.Defaults = NewSettings(3, 100, false)
	m := NewMachine(cfg)
	now := startPlaying(t, m, time.Unix(0, 0))

	m.snake = &Snake{segments: []core.Point{{X: 39, Y: 10}, {X: 38, Y: 10}, {X: 37, Y: 10}}, dir: DirRight}
	m.food = &Food{pos: core.Point{X: 20, Y: 20}}

	m.Update(now.Add(100*time.Millisecond), NewFrame())

	if m.State() != StateGameOver {
		t.Fatalf("state = %v, expected game over at the boundary", m.State())
	}
	if m.Best() != 3 {
		t.Errorf("Best() = %d, expected final length 3", m.Best())
	}

	// Fatal outcome is final: further updates never resume the session
	m.Update(now.Add(200*time.Millisecond), NewFrame())
	if m.State() != StateGameOver {
		t.Errorf("state = %v after game over, expected game over", m.State())
	}
}

func TestSelfCollisionEndsSession(t *testing.T) {
	m := NewMachine(testMachineConfig())
	now := startPlaying(t, m, time.Unix(0, 0))

	// Head advancing right into its own body
	m.snake = &Snake{
		segments: []core.Point{
			{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 7, Y: 5},
		},
		dir: DirRight,
	}
	m.food = &Food{pos: core.Point{X: 20, Y: 20}}

	m.Update(now.Add(100*time.Millisecond), NewFrame())

	if m.State() != StateGameOver {
		t.Fatalf("state = %v, expected game over on self-collision", m.State())
	}
}

func TestFoodConsumptionGrowsSnake(t *testing.T) {
	m := NewMachine(testMachineConfig())
	now := startPlaying(t, m, time.Unix(0, 0))

	head := m.Segments()[0]
	m.food = &Food{pos: core.Point{X: head.X + 1, Y: head.Y}}

	now = now.Add(100 * time.Millisecond)
	m.Update(now, NewFrame()) // eats, growth pending
	if m.SnakeLength() != 3 {
		t.Fatalf("SnakeLength() = %d right after eating, expected 3", m.SnakeLength())
	}

	now = now.Add(100 * time.Millisecond)
	m.Update(now, NewFrame()) // growth applied this tick
	if m.SnakeLength() != 4 {
		t.Errorf("SnakeLength() = %d after growth tick, expected 4", m.SnakeLength())
	}
}

func TestBestPersistsAcrossSessions(t *testing.T) {
	m := NewMachine(testMachineConfig())
	m.best = 10

	now := startPlaying(t, m, time.Unix(0, 0))
	m.gameOver()

	if m.Best() != 10 {
		t.Errorf("Best() = %d, a shorter session lowered the best", m.Best())
	}

	// Back to menu, new session, still 10
	m.Update(now.Add(time.Second), commandFrame(CmdAny))
	if m.State() != StateStartMenu {
		t.Fatalf("state = %v, expected start menu", m.State())
	}
	startPlaying(t, m, now.Add(2*time.Second))
	if m.Best() != 10 {
		t.Errorf("Best() = %d after new session, expected 10", m.Best())
	}
}

func TestPauseAndResume(t *testing.T) {
	m := NewMachine(testMachineConfig())
	now := startPlaying(t, m, time.Unix(0, 0))

	f := NewFrame()
	f.Press(ActionPause)
	res := m.Update(now.Add(100*time.Millisecond), f)
	if m.State() != StatePause {
		t.Fatalf("state = %v, expected pause", m.State())
	}
	if res.Ticked {
		t.Error("simulation ticked on the pause frame")
	}

	// Paused time never ticks
	head := m.Segments()[0]
	m.Update(now.Add(10*time.Second), NewFrame())
	if m.Segments()[0] != head {
		t.Error("snake moved while paused")
	}

	f = NewFrame()
	f.Press(ActionResume)
	m.Update(now.Add(11*time.Second), f)
	if m.State() != StatePlaying {
		t.Errorf("state = %v, expected playing after resume", m.State())
	}
}

func TestConfirmRestart(t *testing.T) {
	m := NewMachine(testMachineConfig())
	now := startPlaying(t, m, time.Unix(0, 0))
	m.snake.Grow()
	m.Update(now.Add(100*time.Millisecond), NewFrame())
	if m.SnakeLength() != 4 {
		t.Fatalf("SnakeLength() = %d, expected 4 before restart", m.SnakeLength())
	}

	f := NewFrame()
	f.Press(ActionPause)
	m.Update(now.Add(200*time.Millisecond), f)
	m.Update(now.Add(300*time.Millisecond), commandFrame(CmdRestart))
	if m.State() != StateConfirmRestart {
		t.Fatalf("state = %v, expected restart confirm", m.State())
	}

	// Declining returns to pause with the session intact
	m.Update(now.Add(400*time.Millisecond), commandFrame(CmdNo))
	if m.State() != StatePause {
		t.Fatalf("state = %v, expected pause after no", m.State())
	}
	if m.SnakeLength() != 4 {
		t.Errorf("SnakeLength() = %d, declining restart changed the session", m.SnakeLength())
	}

	// Confirming starts a fresh session immediately, no countdown
	m.Update(now.Add(500*time.Millisecond), commandFrame(CmdRestart))
	m.Update(now.Add(600*time.Millisecond), commandFrame(CmdYes))
	if m.State() != StatePlaying {
		t.Fatalf("state = %v, expected playing after restart", m.State())
	}
	if m.SnakeLength() != 3 {
		t.Errorf("SnakeLength() = %d, expected fresh initial 3", m.SnakeLength())
	}
}

func TestConfirmMainMenu(t *testing.T) {
	m := NewMachine(testMachineConfig())
	now := startPlaying(t, m, time.Unix(0, 0))

	f := NewFrame()
	f.Press(ActionPause)
	m.Update(now.Add(100*time.Millisecond), f)
	m.Update(now.Add(200*time.Millisecond), commandFrame(CmdMainMenu))
	if m.State() != StateConfirmMainMenu {
		t.Fatalf("state = %v, expected main menu confirm", m.State())
	}

	m.Update(now.Add(300*time.Millisecond), commandFrame(CmdNo))
	if m.State() != StatePause {
		t.Fatalf("state = %v, expected pause after no", m.State())
	}

	m.Update(now.Add(400*time.Millisecond), commandFrame(CmdMainMenu))
	m.Update(now.Add(500*time.Millisecond), commandFrame(CmdYes))
	if m.State() != StateStartMenu {
		t.Errorf("state = %v, expected start menu after yes", m.State())
	}
}

func TestSettingsNavigationRemembersOrigin(t *testing.T) {
	m := NewMachine(testMachineConfig())
	now := time.Unix(0, 0)

	// From the start menu, back returns to the start menu
	m.Update(now, commandFrame(CmdSettings))
	if m.State() != StateSettings {
		t.Fatalf("state = %v, expected settings", m.State())
	}
	m.Update(now, commandFrame(CmdBack))
	if m.State() != StateStartMenu {
		t.Fatalf("back from settings = %v, expected start menu", m.State())
	}

	// From pause, back returns to pause
	now = startPlaying(t, m, now)
	f := NewFrame()
	f.Press(ActionPause)
	m.Update(now.Add(100*time.Millisecond), f)
	m.Update(now.Add(200*time.Millisecond), commandFrame(CmdSettings))
	m.Update(now.Add(300*time.Millisecond), commandFrame(CmdBack))
	if m.State() != StatePause {
		t.Errorf("back from settings = %v, expected pause", m.State())
	}
}

func TestSettingsSliderDrags(t *testing.T) {
	m := NewMachine(testMachineConfig())
	now := time.Unix(0, 0)
	m.Update(now, commandFrame(CmdSettings))

	f := NewFrame()
	f.Slider = SliderDrag{Control: SliderLength, Pos: 1.0}
	m.Update(now, f)
	if got := m.Settings().InitialLength(); got != 10 {
		t.Errorf("length after full drag = %d, expected 10", got)
	}

	f = NewFrame()
	f.Slider = SliderDrag{Control: SliderTick, Pos: 0.0}
	m.Update(now, f)
	if got := m.Settings().TickMs(); got != 50 {
		t.Errorf("tick after zero drag = %d, expected 50", got)
	}

	// Positions off the track clamp instead of escaping the range
	f = NewFrame()
	f.Slider = SliderDrag{Control: SliderLength, Pos: 3.5}
	m.Update(now, f)
	if got := m.Settings().InitialLength(); got != 10 {
		t.Errorf("length after overshoot = %d, expected 10", got)
	}
}

func TestToggleWrap(t *testing.T) {
	m := NewMachine(testMachineConfig())
	now := time.Unix(0, 0)
	m.Update(now, commandFrame(CmdSettings))

	if !m.Settings().Wrap() {
		t.Fatal("wrap expected on initially")
	}
	m.Update(now, commandFrame(CmdToggleWrap))
	if m.Settings().Wrap() {
		t.Error("wrap still on after toggle")
	}
	m.Update(now, commandFrame(CmdToggleWrap))
	if !m.Settings().Wrap() {
		t.Error("wrap still off after second toggle")
	}
}

func TestSettingsApplyToNextSession(t *testing.T) {
	m := NewMachine(testMachineConfig())
	now := time.Unix(0, 0)

	m.Update(now, commandFrame(CmdSettings))
	f := NewFrame()
	f.Slider = SliderDrag{Control: SliderLength, Pos: 1.0}
	m.Update(now, f)
	m.Update(now, commandFrame(CmdBack))

	startPlaying(t, m, now)
	if m.SnakeLength() != 10 {
		t.Errorf("SnakeLength() = %d, expected configured 10", m.SnakeLength())
	}
}

func TestRebindFlow(t *testing.T) {
	m := NewMachine(testMachineConfig())
	now := time.Unix(0, 0)
	m.Update(now, commandFrame(CmdSettings))
	m.Update(now, commandFrame(CmdKeybinds))
	if m.State() != StateKeybinds {
		t.Fatalf("state = %v, expected keybinds", m.State())
	}

	f := NewFrame()
	f.Command = CmdBind
	f.BindAction = ActionUp
	m.Update(now, f)
	if a, editing := m.EditingAction(); !editing || a != ActionUp {
		t.Fatalf("EditingAction() = %v,%v, expected up,true", a, editing)
	}

	f = NewFrame()
	f.RawKey = "i"
	m.Update(now, f)
	if _, editing := m.EditingAction(); editing {
		t.Fatal("still editing after key capture")
	}
	keys := m.Bindings().Keys(ActionUp)
	if len(keys) != 1 || keys[0] != "i" {
		t.Errorf("Keys(ActionUp) = %v, expected [i]", keys)
	}

	// Back cancels a pending edit and returns to settings
	f = NewFrame()
	f.Command = CmdBind
	f.BindAction = ActionDown
	m.Update(now, f)
	m.Update(now, commandFrame(CmdBack))
	if m.State() != StateSettings {
		t.Fatalf("state = %v, expected settings", m.State())
	}
	if _, editing := m.EditingAction(); editing {
		t.Error("edit survived leaving the keybinds screen")
	}
	if got := m.Bindings().Keys(ActionDown); len(got) != 2 {
		t.Errorf("Keys(ActionDown) = %v, cancelled edit changed bindings", got)
	}
}

func TestGameOverAnyActivation(t *testing.T) {
	m := NewMachine(testMachineConfig())
	now := startPlaying(t, m, time.Unix(0, 0))
	m.gameOver()

	// A frame with no activation stays put
	m.Update(now, NewFrame())
	if m.State() != StateGameOver {
		t.Fatalf("state = %v, expected game over to persist", m.State())
	}

	m.Update(now, commandFrame(CmdAny))
	if m.State() != StateStartMenu {
		t.Errorf("state = %v, expected start menu", m.State())
	}
}

func TestQuitFromStartMenu(t *testing.T) {
	m := NewMachine(testMachineConfig())
	m.Update(time.Unix(0, 0), commandFrame(CmdQuit))
	if !m.Terminated() {
		t.Error("Terminated() = false after quit")
	}
}

func TestDeterministicFoodWithSeed(t *testing.T) {
	run := func() []core.Point {
		m := NewMachine(testMachineConfig())
		startPlaying(t, m, time.Unix(0, 0))
		var foods []core.Point
		for i := 0; i < 5; i++ {
			foods = append(foods, m.FoodPosition())
			m.food.Respawn(m.rng, m.grid)
		}
		return foods
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("food sequence diverged at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSnapshot(t *testing.T) {
	m := NewMachine(testMachineConfig())
	now := startPlaying(t, m, time.Unix(0, 0))
	m.Update(now.Add(100*time.Millisecond), NewFrame())

	snap := m.Snapshot()
	if snap.State != StatePlaying {
		t.Errorf("snapshot state = %v, expected playing", snap.State)
	}
	if snap.SnakeLen != 3 {
		t.Errorf("snapshot length = %d, expected 3", snap.SnakeLen)
	}
	if snap.Head != m.Segments()[0] {
		t.Errorf("snapshot head = %v, machine says %v", snap.Head, m.Segments()[0])
	}
	if snap.TickMs != 100 || snap.InitialLength != 3 || !snap.Wrap {
		t.Errorf("snapshot settings = %d/%d/%v, expected 100/3/true", snap.TickMs, snap.InitialLength, snap.Wrap)
	}
}
