package state

import (
	"unicode"

	"github.com/atomicstack/ringmenu/internal/menu"
)

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Headings   []string
	Heading    int
	SubItems   []string // nil while the sub-menu is closed
	SubItem    int      // -1 while the sub-menu is closed
	Narration  string   // describes the previous action
	LastAction ActionKind
	EverOpened bool
	Exited     bool
}

// SubMenuOpen reports whether the snapshot shows a sub-menu.
func (s Snapshot) SubMenuOpen() bool {
	return s.SubItem >= 0
}

// Transition pairs what just happened with the resulting view.
type Transition struct {
	Action Action
	View   Snapshot
}

// Engine applies key events to the cursor over a read-only menu store.
type Engine struct {
	store      *menu.Store
	cursor     Cursor
	everOpened bool
	last       Action
	done       bool
}

// NewEngine starts on the first heading with no sub-menu open.
func NewEngine(store *menu.Store) *Engine {
	return &Engine{
		store:  store,
		cursor: Cursor{Heading: store.First(), Item: menu.NoItem},
		last:   Action{Kind: ActionNone},
	}
}

// Cursor returns the current cursor.
func (e *Engine) Cursor() Cursor {
	return e.cursor
}

// EverOpened reports whether DOWN opened the current heading's sub-menu since
// the heading was last entered.
func (e *Engine) EverOpened() bool {
	return e.everOpened
}

// Done reports whether the exit key was pressed.
func (e *Engine) Done() bool {
	return e.done
}

// Store exposes the menu the engine navigates.
func (e *Engine) Store() *menu.Store {
	return e.store
}

// Apply consumes one event. Every event is accepted; events arriving after
// exit leave the state untouched.
func (e *Engine) Apply(ev Event) Transition {
	if e.done {
		return Transition{Action: e.last, View: e.Snapshot()}
	}
	var action Action
	switch ev.Kind {
	case EventUp:
		action = e.up()
	case EventDown:
		action = e.down()
	case EventLeft:
		action = e.sideways(ActionLeft, e.store.PrevHeading(e.cursor.Heading))
	case EventRight:
		action = e.sideways(ActionRight, e.store.NextHeading(e.cursor.Heading))
	case EventExit:
		action = e.exit()
	case EventRune:
		action = e.character(ev)
	default:
		action = invalid(ev)
	}
	e.last = action
	return Transition{Action: action, View: e.Snapshot()}
}

// Snapshot renders the current state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Headings:   e.store.HeadingLabels(),
		Heading:    int(e.cursor.Heading),
		SubItem:    -1,
		Narration:  e.last.Narration(),
		LastAction: e.last.Kind,
		EverOpened: e.everOpened,
		Exited:     e.done,
	}
	if e.cursor.Open() {
		snap.SubItems = e.store.SubItemLabels(e.cursor.Heading)
		snap.SubItem = e.store.ItemPosition(e.cursor.Item)
	}
	return snap
}

func (e *Engine) up() Action {
	if !e.cursor.Open() {
		return Action{Kind: ActionUpIgnored}
	}
	from := e.store.ItemLabel(e.cursor.Item)
	e.cursor.Item = e.store.PrevItem(e.cursor.Item)
	return Action{Kind: ActionMoveUp, From: from, To: e.store.ItemLabel(e.cursor.Item)}
}

func (e *Engine) down() Action {
	heading := e.store.HeadingLabel(e.cursor.Heading)
	if !e.cursor.Open() {
		e.everOpened = true
		e.cursor.Item = e.store.SubMenuOf(e.cursor.Heading)
		if !e.cursor.Open() {
			return Action{Kind: ActionOpenEmpty, To: heading}
		}
		return Action{Kind: ActionOpen, To: heading}
	}
	from := e.store.ItemLabel(e.cursor.Item)
	e.cursor.Item = e.store.NextItem(e.cursor.Item)
	return Action{Kind: ActionMoveDown, From: from, To: e.store.ItemLabel(e.cursor.Item)}
}

func (e *Engine) sideways(kind ActionKind, target menu.HeadingID) Action {
	from := e.store.HeadingLabel(e.cursor.Heading)
	e.cursor.moveHeading(target)
	e.everOpened = false
	return Action{Kind: kind, From: from, To: e.store.HeadingLabel(target)}
}

func (e *Engine) character(ev Event) Action {
	if ev.Rune == 'x' || ev.Rune == 'X' {
		return e.exit()
	}
	if unicode.IsLetter(ev.Rune) {
		if target, ok := e.store.HeadingForHotkey(ev.Rune); ok {
			from := e.store.HeadingLabel(e.cursor.Heading)
			if e.cursor.moveHeading(target) {
				e.everOpened = false
			}
			return Action{Kind: ActionHotkey, From: from, To: e.store.HeadingLabel(target), Hotkey: ev.Rune}
		}
	}
	return invalid(ev)
}

func (e *Engine) exit() Action {
	e.done = true
	return Action{Kind: ActionExit}
}

func invalid(ev Event) Action {
	raw := ev.Raw
	if raw == "" && ev.Rune != 0 {
		raw = Printable(ev.Rune)
	}
	if raw == "" {
		raw = "?"
	}
	return Action{Kind: ActionInvalid, Raw: raw}
}
