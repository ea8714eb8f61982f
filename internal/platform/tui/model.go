package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vs-123/snakey/internal/config"
	"github.com/vs-123/snakey/internal/core"
	"github.com/vs-123/snakey/internal/game"
)

// lengthPos returns the track position whose bucket midpoint maps to
// the given length. Midpoints survive the truncating ratio-to-value
// mapping, so keyboard steps always land on the intended value.
func lengthPos(n int) float64 {
	return (float64(n-game.MinInitialLength) + 0.5) / float64(game.MaxInitialLength-game.MinInitialLength)
}

// tickPos is lengthPos for the tick interval track.
func tickPos(ms int) float64 {
	return (float64(ms-game.MinTickMs) + 0.5) / float64(game.MaxTickMs-game.MinTickMs)
}

// Model is the Bubble Tea model. It translates terminal events into an
// input Frame, advances the machine once per frame message, and renders
// the machine's state.
//
// Terminals report key presses but not releases, so "held" movement is
// emulated: every movement press accumulates in the frame and the
// accumulator is cleared only after a simulation tick consumes it.
type Model struct {
	machine *game.Machine
	frame   game.Frame
	screen  *core.Screen

	keys MenuKeyMap
	help help.Model

	fps    int
	now    time.Time
	cursor int
	last   game.State

	quitting bool
}

// NewModel creates the shell around a fresh machine.
func NewModel(cfg game.Config, fps int) *Model {
	return &Model{
		machine: game.NewMachine(cfg),
		frame:   game.NewFrame(),
		screen:  core.NewScreen(80, 24),
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
		fps:     fps,
		last:    game.StateStartMenu,
	}
}

// Init starts the frame loop.
func (m *Model) Init() tea.Cmd {
	return frameCmd(m.fps)
}

// Update handles terminal events and frame messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// The last row is reserved for the help footer.
		h := msg.Height - 1
		if h < 1 {
			h = 1
		}
		m.screen.Resize(msg.Width, h)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case FrameMsg:
		m.now = time.Time(msg)
		res := m.machine.Update(m.now, m.frame)
		m.frame.ResetPressed(!res.Ticked)

		if m.machine.Terminated() {
			m.quitting = true
			return m, tea.Quit
		}
		if res.State != m.last {
			m.last = res.State
			m.cursor = 0
		}
		return m, frameCmd(m.fps)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	raw := msg.String()
	state := m.machine.State()

	// A rebind in progress consumes the next key outright.
	if state == game.StateKeybinds {
		if _, editing := m.machine.EditingAction(); editing {
			m.frame.RawKey = raw
			return m, nil
		}
	}

	// Resolve rebindable game actions where they apply.
	if state == game.StatePlaying || state == game.StatePause {
		for _, a := range m.machine.Bindings().ActionsFor(raw) {
			m.frame.Press(a)
		}
	}

	switch state {
	case game.StateStartMenu:
		m.keyMenu(msg, newStartLayout(m.screen.Width(), m.screen.Height()).buttons())
	case game.StateSettings:
		m.keySettings(msg)
	case game.StateKeybinds:
		m.keyKeybinds(msg)
	case game.StatePause:
		m.keyMenu(msg, newPauseLayout(m.screen.Width(), m.screen.Height()).buttons())
	case game.StateConfirmRestart, game.StateConfirmMainMenu:
		m.keyConfirm(msg)
	case game.StateGameOver:
		m.frame.Command = game.CmdAny
	}
	return m, nil
}

// keyMenu handles up/down navigation and activation over a vertical
// button list.
func (m *Model) keyMenu(msg tea.KeyMsg, buttons []widget) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + len(buttons) - 1) % len(buttons)
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(buttons)
	case key.Matches(msg, m.keys.Select):
		m.frame.Command = buttons[m.cursor].Command
	}
}

// Settings focus order: length slider, tick slider, wrap toggle,
// keybinds button, back button.
func (m *Model) keySettings(msg tea.KeyMsg) {
	const focusables = 5
	st := m.machine.Settings()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + focusables - 1) % focusables
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % focusables
	case key.Matches(msg, m.keys.Left):
		switch m.cursor {
		case 0:
			m.frame.Slider = game.SliderDrag{Control: game.SliderLength, Pos: lengthPos(st.InitialLength() - 1)}
		case 1:
			m.frame.Slider = game.SliderDrag{Control: game.SliderTick, Pos: tickPos(st.TickMs() - 25)}
		}
	case key.Matches(msg, m.keys.Right):
		switch m.cursor {
		case 0:
			m.frame.Slider = game.SliderDrag{Control: game.SliderLength, Pos: lengthPos(st.InitialLength() + 1)}
		case 1:
			m.frame.Slider = game.SliderDrag{Control: game.SliderTick, Pos: tickPos(st.TickMs() + 25)}
		}
	case key.Matches(msg, m.keys.Select):
		switch m.cursor {
		case 2:
			m.frame.Command = game.CmdToggleWrap
		case 3:
			m.frame.Command = game.CmdKeybinds
		case 4:
			m.frame.Command = game.CmdBack
		}
	case key.Matches(msg, m.keys.Back):
		m.frame.Command = game.CmdBack
	}
}

func (m *Model) keyKeybinds(msg tea.KeyMsg) {
	actions := game.Actions()
	focusables := len(actions) + 1 // rows plus the back button

	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + focusables - 1) % focusables
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % focusables
	case key.Matches(msg, m.keys.Select):
		if m.cursor < len(actions) {
			m.frame.Command = game.CmdBind
			m.frame.BindAction = actions[m.cursor]
		} else {
			m.frame.Command = game.CmdBack
		}
	case key.Matches(msg, m.keys.Back):
		m.frame.Command = game.CmdBack
	}
}

func (m *Model) keyConfirm(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right),
		key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		m.cursor = 1 - m.cursor
	case key.Matches(msg, m.keys.Select):
		if m.cursor == 0 {
			m.frame.Command = game.CmdYes
		} else {
			m.frame.Command = game.CmdNo
		}
	case key.Matches(msg, m.keys.Back):
		m.frame.Command = game.CmdNo
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	drag := msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft
	hover := msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonNone
	p := core.Point{X: msg.X, Y: msg.Y}
	w, h := m.screen.Width(), m.screen.Height()

	switch m.machine.State() {
	case game.StateStartMenu:
		m.mouseButtons(p, press, hover, newStartLayout(w, h).buttons())

	case game.StateSettings:
		l := newSettingsLayout(w, h)
		if (press || drag) && l.LengthSlider.Contains(p.X, p.Y) {
			m.frame.Slider = game.SliderDrag{Control: game.SliderLength, Pos: sliderPos(l.LengthSlider, p.X)}
			m.cursor = 0
			return
		}
		if (press || drag) && l.TickSlider.Contains(p.X, p.Y) {
			m.frame.Slider = game.SliderDrag{Control: game.SliderTick, Pos: sliderPos(l.TickSlider, p.X)}
			m.cursor = 1
			return
		}
		if press && l.WrapBox.Contains(p.X, p.Y) {
			m.frame.Command = game.CmdToggleWrap
			return
		}
		m.mouseButtons(p, press, hover, []widget{
			{}, {}, {},
			{Rect: l.Keybinds, Command: game.CmdKeybinds},
			{Rect: l.Back, Command: game.CmdBack},
		})

	case game.StateKeybinds:
		l := newKeybindsLayout(w, h)
		actions := game.Actions()
		for i, row := range l.Rows {
			if row.Contains(p.X, p.Y) {
				if press {
					m.frame.Command = game.CmdBind
					m.frame.BindAction = actions[i]
				}
				if press || hover {
					m.cursor = i
				}
				return
			}
		}
		if l.Back.Contains(p.X, p.Y) {
			if press {
				m.frame.Command = game.CmdBack
			}
			if press || hover {
				m.cursor = len(l.Rows)
			}
		}

	case game.StatePause:
		m.mouseButtons(p, press, hover, newPauseLayout(w, h).buttons())

	case game.StateConfirmRestart, game.StateConfirmMainMenu:
		m.mouseButtons(p, press, hover, newConfirmLayout(w, h).buttons())

	case game.StateGameOver:
		if press {
			m.frame.Command = game.CmdAny
		}
	}
}

// mouseButtons hit-tests a widget list: a press activates, motion moves
// focus. Zero-rect placeholders keep indices aligned with keyboard
// focus order.
func (m *Model) mouseButtons(p core.Point, press, hover bool, buttons []widget) {
	for i, w := range buttons {
		if w.Rect.W == 0 || !w.Rect.Contains(p.X, p.Y) {
			continue
		}
		if press {
			m.frame.Command = w.Command
		}
		if press || hover {
			m.cursor = i
		}
		return
	}
}

// sliderPos maps an x coordinate on a track to a 0..1 position.
func sliderPos(track core.Rect, x int) float64 {
	if track.W <= 1 {
		return 0
	}
	return core.ClampF(float64(x-track.X)/float64(track.W-1), 0, 1)
}

// View renders the current state plus a help footer.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()

	switch m.machine.State() {
	case game.StateStartMenu:
		m.viewStartMenu()
	case game.StateSettings:
		m.viewSettings()
	case game.StateKeybinds:
		m.viewKeybinds()
	case game.StateCountdown:
		m.viewCountdown()
	case game.StatePlaying:
		m.viewPlaying()
	case game.StatePause:
		m.viewPause()
	case game.StateConfirmRestart:
		m.viewConfirm("Restart the game?")
	case game.StateConfirmMainMenu:
		m.viewConfirm("Return to the main menu?")
	case game.StateGameOver:
		m.viewGameOver()
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the terminal program and blocks until it exits.
func Run(cfg config.Config, seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gc := game.Config{
		Grid:      core.Grid{W: cfg.Grid.Width, H: cfg.Grid.Height},
		Countdown: time.Duration(cfg.Game.CountdownMs) * time.Millisecond,
		Seed:      seed,
		Defaults:  game.NewSettings(cfg.Game.InitialLength, cfg.Game.TickMs, cfg.Game.Wrap),
	}

	p := tea.NewProgram(
		NewModel(gc, cfg.Shell.FPS),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
