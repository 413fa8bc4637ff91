package state

import (
	"fmt"
	"unicode"
)

// ActionKind names what a transition did.
type ActionKind int

const (
	// ActionNone precedes the first key press.
	ActionNone ActionKind = iota
	ActionHotkey
	ActionOpen
	ActionOpenEmpty
	ActionMoveDown
	ActionMoveUp
	ActionUpIgnored
	ActionLeft
	ActionRight
	ActionExit
	ActionInvalid
)

var actionNames = map[ActionKind]string{
	ActionNone:      "none",
	ActionHotkey:    "hotkey",
	ActionOpen:      "open",
	ActionOpenEmpty: "open-empty",
	ActionMoveDown:  "move-down",
	ActionMoveUp:    "move-up",
	ActionUpIgnored: "up-ignored",
	ActionLeft:      "left",
	ActionRight:     "right",
	ActionExit:      "exit",
	ActionInvalid:   "invalid",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(k))
}

// Action describes a completed transition. From and To are labels captured
// before the cursor moved.
type Action struct {
	Kind   ActionKind
	From   string
	To     string
	Hotkey rune
	Raw    string
}

// Narration renders the sentence shown for the previous action.
func (a Action) Narration() string {
	switch a.Kind {
	case ActionHotkey:
		return fmt.Sprintf("You jumped to the %s sub-menu using the '%c' hotkey.", a.To, unicode.ToUpper(a.Hotkey))
	case ActionOpen:
		return fmt.Sprintf("You pressed the DOWN arrow key opening the %s sub-menu.", a.To)
	case ActionOpenEmpty:
		return fmt.Sprintf("You pressed the DOWN arrow key, but the %s sub-menu has no entries.", a.To)
	case ActionMoveDown:
		return fmt.Sprintf("You pressed the DOWN arrow key moving from %s to %s.", a.From, a.To)
	case ActionMoveUp:
		return fmt.Sprintf("You pressed the UP arrow key moving from %s to %s.", a.From, a.To)
	case ActionUpIgnored:
		return "You pressed the UP arrow key, but nothing happened as no sub-menu was open."
	case ActionLeft:
		return fmt.Sprintf("You pressed the LEFT arrow key moving from %s to %s.", a.From, a.To)
	case ActionRight:
		return fmt.Sprintf("You pressed the RIGHT arrow key moving from %s to %s.", a.From, a.To)
	case ActionExit:
		return "Exiting..."
	case ActionInvalid:
		return fmt.Sprintf("Sorry, you seemed to have typed an invalid character (Entered: %s).", a.Raw)
	default:
		return ""
	}
}

// Printable renders r for echoing in narration. Control characters are shown
// in caret notation.
func Printable(r rune) string {
	switch {
	case r == 0x7f:
		return "^?"
	case r >= 0 && r < 0x20:
		return "^" + string(rune(r+'@'))
	case unicode.IsPrint(r):
		return string(r)
	default:
		return fmt.Sprintf("%U", r)
	}
}
