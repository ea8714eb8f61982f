package tui

import (
	"github.com/vs-123/snakey/internal/core"
	"github.com/vs-123/snakey/internal/game"
)

// Widget geometry in terminal cells. The same rects are used for
// drawing and for mouse hit-testing, so the two can never disagree.
const (
	buttonW   = 24
	buttonH   = 3
	buttonGap = 1
	sliderW   = 24
)

// startLayout positions the start menu buttons.
type startLayout struct {
	Play     core.Rect
	Settings core.Rect
	Quit     core.Rect
}

func newStartLayout(w, h int) startLayout {
	total := 3*buttonH + 2*buttonGap
	x := (w - buttonW) / 2
	y := (h - total) / 2
	if y < 5 {
		y = 5
	}
	step := buttonH + buttonGap
	return startLayout{
		Play:     core.NewRect(x, y, buttonW, buttonH),
		Settings: core.NewRect(x, y+step, buttonW, buttonH),
		Quit:     core.NewRect(x, y+2*step, buttonW, buttonH),
	}
}

// buttons returns the start menu buttons in focus order.
func (l startLayout) buttons() []widget {
	return []widget{
		{Rect: l.Play, Label: "PLAY", Command: game.CmdPlay},
		{Rect: l.Settings, Label: "SETTINGS", Command: game.CmdSettings},
		{Rect: l.Quit, Label: "QUIT", Command: game.CmdQuit},
	}
}

// settingsLayout positions the settings widgets. Slider rects are the
// one-row tracks; drags anywhere on a track map x to a 0..1 position.
type settingsLayout struct {
	LengthSlider core.Rect
	TickSlider   core.Rect
	WrapBox      core.Rect
	Keybinds     core.Rect
	Back         core.Rect
}

func newSettingsLayout(w, h int) settingsLayout {
	col := (w - sliderW) / 2
	return settingsLayout{
		LengthSlider: core.NewRect(col, 6, sliderW, 1),
		TickSlider:   core.NewRect(col, 10, sliderW, 1),
		WrapBox:      core.NewRect(col, 13, 3, 1),
		Keybinds:     core.NewRect((w-buttonW)/2, 16, buttonW, buttonH),
		Back:         core.NewRect(w-buttonW-2, h-buttonH-1, buttonW, buttonH),
	}
}

// keybindsLayout positions one row per rebindable action plus Back.
type keybindsLayout struct {
	Rows []core.Rect
	Back core.Rect
}

func newKeybindsLayout(w, h int) keybindsLayout {
	rowW := 36
	col := (w - rowW) / 2
	rows := make([]core.Rect, len(game.Actions()))
	for i := range rows {
		rows[i] = core.NewRect(col, 4+i*2, rowW, 1)
	}
	return keybindsLayout{
		Rows: rows,
		Back: core.NewRect(w-buttonW-2, h-buttonH-1, buttonW, buttonH),
	}
}

// pauseLayout positions the pause menu buttons.
type pauseLayout struct {
	Resume   core.Rect
	Settings core.Rect
	Restart  core.Rect
	MainMenu core.Rect
}

func newPauseLayout(w, h int) pauseLayout {
	total := 4*buttonH + 3*buttonGap
	x := (w - buttonW) / 2
	y := 4 + (h-4-total)/2
	if y < 4 {
		y = 4
	}
	step := buttonH + buttonGap
	return pauseLayout{
		Resume:   core.NewRect(x, y, buttonW, buttonH),
		Settings: core.NewRect(x, y+step, buttonW, buttonH),
		Restart:  core.NewRect(x, y+2*step, buttonW, buttonH),
		MainMenu: core.NewRect(x, y+3*step, buttonW, buttonH),
	}
}

func (l pauseLayout) buttons() []widget {
	return []widget{
		{Rect: l.Resume, Label: "RESUME", Command: game.CmdResume},
		{Rect: l.Settings, Label: "SETTINGS", Command: game.CmdSettings},
		{Rect: l.Restart, Label: "RESTART", Command: game.CmdRestart},
		{Rect: l.MainMenu, Label: "MAIN MENU", Command: game.CmdMainMenu},
	}
}

// confirmLayout positions a yes/no dialog.
type confirmLayout struct {
	Yes core.Rect
	No  core.Rect
}

func newConfirmLayout(w, h int) confirmLayout {
	y := h/2 + 2
	return confirmLayout{
		Yes: core.NewRect(w/2-buttonW-1, y, buttonW, buttonH),
		No:  core.NewRect(w/2+1, y, buttonW, buttonH),
	}
}

func (l confirmLayout) buttons() []widget {
	return []widget{
		{Rect: l.Yes, Label: "YES", Command: game.CmdYes},
		{Rect: l.No, Label: "NO", Command: game.CmdNo},
	}
}

// boardLayout positions the playfield. Inner is the cell the grid
// origin maps to; Border is the frame drawn around it.
type boardLayout struct {
	Inner  core.Point
	Border core.Rect
}

func newBoardLayout(w, h int, grid core.Grid) boardLayout {
	ox := (w - grid.W) / 2
	oy := 2 + (h-2-grid.H)/2
	if oy < 2 {
		oy = 2
	}
	return boardLayout{
		Inner:  core.Point{X: ox, Y: oy},
		Border: core.NewRect(ox-1, oy-1, grid.W+2, grid.H+2),
	}
}

// widget is a clickable, focusable control.
type widget struct {
	Rect    core.Rect
	Label   string
	Command game.Command
}
