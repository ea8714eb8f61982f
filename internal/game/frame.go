package game

// Command identifies a UI control the shell resolved to an activation
// this frame. The machine never sees raw mouse or menu events, only the
// pre-resolved command.
type Command int

const (
	CmdNone Command = iota
	CmdPlay
	CmdSettings
	CmdQuit
	CmdKeybinds
	CmdBack
	CmdResume
	CmdRestart
	CmdMainMenu
	CmdYes
	CmdNo
	CmdToggleWrap
	CmdBind // begin rebinding Frame.BindAction
	CmdAny  // primary activation anywhere (game over screen)
)

// SliderControl identifies which settings slider a drag targets.
type SliderControl int

const (
	SliderNone SliderControl = iota
	SliderLength
	SliderTick
)

// SliderDrag is a slider drag fact: the control and the 0..1 position
// along its track.
type SliderDrag struct {
	Control SliderControl
	Pos     float64
}

// Frame carries the pre-resolved input facts for one update: which
// logical actions are held or were newly activated, which UI control was
// activated, an in-progress slider drag, and the raw key newly pressed
// (consumed only while rebinding; "" when no key event occurred).
type Frame struct {
	held    map[Action]bool
	pressed map[Action]bool

	Command    Command
	BindAction Action
	Slider     SliderDrag
	RawKey     string
}

// NewFrame creates an empty input frame.
func NewFrame() Frame {
	return Frame{
		held:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// Hold marks an action as held this frame.
func (f *Frame) Hold(a Action) {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	f.held[a] = true
}

// Press marks an action as newly activated this frame. A pressed action
// is also held.
func (f *Frame) Press(a Action) {
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
	f.pressed[a] = true
	f.Hold(a)
}

// Held reports whether the action is held this frame.
func (f Frame) Held(a Action) bool {
	return f.held[a]
}

// Pressed reports whether the action was newly activated this frame.
func (f Frame) Pressed(a Action) bool {
	return f.pressed[a]
}

// Reset clears all facts for the next frame.
func (f *Frame) Reset() {
	for k := range f.held {
		delete(f.held, k)
	}
	for k := range f.pressed {
		delete(f.pressed, k)
	}
	f.Command = CmdNone
	f.BindAction = 0
	f.Slider = SliderDrag{}
	f.RawKey = ""
}

// ResetPressed clears the one-shot facts but keeps held actions. The
// shell uses this between render frames while accumulating held movement
// input for the next simulation tick.
func (f *Frame) ResetPressed(keepHeld bool) {
	for k := range f.pressed {
		delete(f.pressed, k)
	}
	if !keepHeld {
		for k := range f.held {
			delete(f.held, k)
		}
	}
	f.Command = CmdNone
	f.BindAction = 0
	f.Slider = SliderDrag{}
	f.RawKey = ""
}
