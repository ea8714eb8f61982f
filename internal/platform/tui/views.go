package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/vs-123/snakey/internal/core"
	"github.com/vs-123/snakey/internal/game"
)

// drawButton renders a boxed button. The focused button gets a bright
// border and a pointer so keyboard and mouse focus look the same.
func drawButton(s *core.Screen, w widget, focused bool) {
	border := core.ColorGray
	label := core.ColorWhite
	if focused {
		border = core.ColorBrightYellow
		label = core.ColorBrightYellow
	}
	s.DrawRect(w.Rect, ' ', core.ColorDefault)
	s.DrawBox(w.Rect, border)

	text := w.Label
	if focused {
		text = "▸ " + text
	}
	x := w.Rect.X + (w.Rect.W-len([]rune(text)))/2
	s.DrawText(x, w.Rect.Y+w.Rect.H/2, text, label)
}

// drawSlider renders a one-row track with a knob at the given ratio and
// the current value to the right of it.
func drawSlider(s *core.Screen, track core.Rect, ratio float64, value string, focused bool) {
	c := core.ColorWhite
	if focused {
		c = core.ColorBrightYellow
	}
	s.DrawHLine(track.X, track.Y, track.W, '─', core.ColorGray)
	knob := track.X + int(ratio*float64(track.W-1)+0.5)
	s.SetColored(knob, track.Y, '█', c)
	s.DrawText(track.Right()+2, track.Y, value, c)
}

func (m *Model) viewStartMenu() {
	s := m.screen
	l := newStartLayout(s.Width(), s.Height())

	s.DrawTextCentered(2, "S N A K E Y", core.ColorBrightYellow)
	for i, w := range l.buttons() {
		drawButton(s, w, i == m.cursor)
	}
	if m.machine.Best() > 0 {
		s.DrawTextCentered(s.Height()-2, fmt.Sprintf("best length %d", m.machine.Best()), core.ColorGray)
	}
}

func (m *Model) viewSettings() {
	s := m.screen
	l := newSettingsLayout(s.Width(), s.Height())
	st := m.machine.Settings()

	s.DrawTextCentered(1, "SETTINGS", core.ColorBrightYellow)

	labelColor := func(focus int) core.Color {
		if m.cursor == focus {
			return core.ColorBrightYellow
		}
		return core.ColorWhite
	}

	s.DrawText(l.LengthSlider.X, l.LengthSlider.Y-1, "INITIAL SNAKE LENGTH", labelColor(0))
	drawSlider(s, l.LengthSlider, st.LengthRatio(), fmt.Sprintf("%d", st.InitialLength()), m.cursor == 0)

	s.DrawText(l.TickSlider.X, l.TickSlider.Y-1, "TICK RATE", labelColor(1))
	drawSlider(s, l.TickSlider, st.TickRatio(), fmt.Sprintf("%d ms", st.TickMs()), m.cursor == 1)

	mark := ' '
	if st.Wrap() {
		mark = 'x'
	}
	s.DrawText(l.WrapBox.X, l.WrapBox.Y, fmt.Sprintf("[%c] wrap around edges", mark), labelColor(2))

	drawButton(s, widget{Rect: l.Keybinds, Label: "KEY BINDS", Command: game.CmdKeybinds}, m.cursor == 3)
	drawButton(s, widget{Rect: l.Back, Label: "BACK", Command: game.CmdBack}, m.cursor == 4)
}

func (m *Model) viewKeybinds() {
	s := m.screen
	l := newKeybindsLayout(s.Width(), s.Height())
	binds := m.machine.Bindings()
	editing, isEditing := m.machine.EditingAction()

	s.DrawTextCentered(1, "KEY BINDS", core.ColorBrightYellow)

	for i, a := range game.Actions() {
		row := l.Rows[i]
		c := core.ColorWhite
		keys := strings.Join(binds.Keys(a), ", ")
		if isEditing && a == editing {
			c = core.ColorBrightYellow
			keys = "press a key..."
		} else if m.cursor == i {
			c = core.ColorBrightYellow
		}
		s.DrawText(row.X, row.Y, strings.ToUpper(a.String()), c)
		s.DrawText(row.X+14, row.Y, keys, c)
	}

	drawButton(s, widget{Rect: l.Back, Label: "BACK", Command: game.CmdBack}, m.cursor == len(l.Rows))
}

func (m *Model) viewCountdown() {
	s := m.screen
	m.drawBoard(false)

	rem := m.machine.CountdownRemaining(m.now)
	n := int(rem/time.Millisecond)/1000 + 1
	s.DrawTextCentered(s.Height()/2, fmt.Sprintf("Starting in %d...", n), core.ColorBrightYellow)
}

func (m *Model) viewPlaying() {
	m.drawBoard(true)
}

// drawBoard renders the HUD, the playfield frame, and, when a session is
// live, the snake and food.
func (m *Model) drawBoard(session bool) {
	s := m.screen
	grid := m.machine.Grid()
	l := newBoardLayout(s.Width(), s.Height(), grid)

	hud := fmt.Sprintf("LENGTH %d   BEST %d", m.machine.SnakeLength(), m.machine.Best())
	s.DrawText(l.Border.X, 0, hud, core.ColorWhite)
	if m.machine.Settings().Wrap() {
		s.DrawText(l.Border.Right()-4, 0, "wrap", core.ColorGray)
	}

	s.DrawBox(l.Border, core.ColorGray)

	if !session {
		return
	}

	food := m.machine.FoodPosition()
	s.SetColored(l.Inner.X+food.X, l.Inner.Y+food.Y, '*', core.ColorRed)

	for i, seg := range m.machine.Segments() {
		r, c := 'o', core.ColorGreen
		if i == 0 {
			r, c = 'O', core.ColorBrightWhite
		}
		s.SetColored(l.Inner.X+seg.X, l.Inner.Y+seg.Y, r, c)
	}
}

func (m *Model) viewPause() {
	s := m.screen
	m.drawBoard(true)

	l := newPauseLayout(s.Width(), s.Height())
	s.DrawTextCentered(2, "PAUSED", core.ColorBrightYellow)
	for i, w := range l.buttons() {
		drawButton(s, w, i == m.cursor)
	}
}

func (m *Model) viewConfirm(question string) {
	s := m.screen
	m.drawBoard(true)

	l := newConfirmLayout(s.Width(), s.Height())
	s.DrawTextCentered(l.Yes.Y-3, question, core.ColorBrightYellow)
	for i, w := range l.buttons() {
		drawButton(s, w, i == m.cursor)
	}
}

func (m *Model) viewGameOver() {
	s := m.screen
	mid := s.Height() / 2

	s.DrawTextCentered(mid-3, "GAME OVER", core.ColorRed)
	s.DrawTextCentered(mid-1, fmt.Sprintf("LENGTH %d", m.machine.SnakeLength()), core.ColorWhite)
	s.DrawTextCentered(mid, fmt.Sprintf("BEST LENGTH %d", m.machine.Best()), core.ColorBrightYellow)
	s.DrawTextCentered(mid+3, "press any key", core.ColorGray)
}
