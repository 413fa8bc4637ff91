package state

// EventKind classifies a logical key event.
type EventKind int

const (
	// EventInvalid is a key sequence that could not be decoded.
	EventInvalid EventKind = iota
	// EventRune is a printable or control character outside an arrow sequence.
	EventRune
	EventUp
	EventDown
	EventLeft
	EventRight
	// EventExit requests termination regardless of the typed character,
	// e.g. an interrupt.
	EventExit
)

func (k EventKind) String() string {
	switch k {
	case EventRune:
		return "rune"
	case EventUp:
		return "up"
	case EventDown:
		return "down"
	case EventLeft:
		return "left"
	case EventRight:
		return "right"
	case EventExit:
		return "exit"
	default:
		return "invalid"
	}
}

// Event is one logical key press. Raw carries a printable rendition of what
// was typed, echoed back when the key is rejected.
type Event struct {
	Kind EventKind
	Rune rune
	Raw  string
}

// Arrow builds an arrow key event.
func Arrow(kind EventKind) Event {
	return Event{Kind: kind}
}

// Rune builds a character event.
func Rune(r rune) Event {
	return Event{Kind: EventRune, Rune: r, Raw: Printable(r)}
}
