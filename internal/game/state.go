package game

// State identifies the active application screen. Exactly one is active
// at a time; the machine dispatches every frame on this value.
type State string

const (
	StateStartMenu       State = "start_menu"
	StateSettings        State = "settings"
	StateKeybinds        State = "keybinds"
	StateCountdown       State = "countdown"
	StatePlaying         State = "playing"
	StatePause           State = "pause"
	StateConfirmRestart  State = "confirm_restart"
	StateConfirmMainMenu State = "confirm_main_menu"
	StateGameOver        State = "game_over"
)

// Direction is the snake's heading. A snake always has one; there is no
// "none" variant.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the per-step offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
