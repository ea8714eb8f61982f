package game

// Action is a logical, rebindable input the player can trigger.
type Action int

const (
	ActionPause Action = iota
	ActionResume
	ActionUp
	ActionDown
	ActionLeft
	ActionRight

	numActions
)

// Actions lists all bindable actions in display order.
func Actions() []Action {
	return []Action{ActionPause, ActionResume, ActionUp, ActionDown, ActionLeft, ActionRight}
}

func (a Action) String() string {
	switch a {
	case ActionPause:
		return "pause"
	case ActionResume:
		return "resume"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	default:
		return "unknown"
	}
}

// KeyBindings maps logical actions to one or more physical key names
// (Bubble Tea key strings such as "esc", "up", "w"). User-rebindable at
// runtime; no logic beyond membership testing.
type KeyBindings struct {
	keys map[Action][]string
}

// DefaultKeyBindings returns the stock bindings: ESC pauses and resumes,
// arrows and WASD move.
func DefaultKeyBindings() *KeyBindings {
	return &KeyBindings{
		keys: map[Action][]string{
			ActionPause:  {"esc"},
			ActionResume: {"esc"},
			ActionUp:     {"up", "w"},
			ActionDown:   {"down", "s"},
			ActionLeft:   {"left", "a"},
			ActionRight:  {"right", "d"},
		},
	}
}

// Keys returns the key names bound to the action.
func (kb *KeyBindings) Keys(a Action) []string {
	return kb.keys[a]
}

// IsBound reports whether the key name is bound to the action.
func (kb *KeyBindings) IsBound(a Action, key string) bool {
	for _, k := range kb.keys[a] {
		if k == key {
			return true
		}
	}
	return false
}

// Rebind replaces the action's bindings with the single given key.
func (kb *KeyBindings) Rebind(a Action, key string) {
	kb.keys[a] = []string{key}
}

// ActionsFor returns every action the key name is bound to.
func (kb *KeyBindings) ActionsFor(key string) []Action {
	var out []Action
	for _, a := range Actions() {
		if kb.IsBound(a, key) {
			out = append(out, a)
		}
	}
	return out
}
