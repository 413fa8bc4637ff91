package ui

import (
	"github.com/atomicstack/ringmenu/internal/logging/events"
	"github.com/atomicstack/ringmenu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// dispatch applies one event to the engine and traces the outcome. Both
// frontends route every key through here.
func dispatch(engine *state.Engine, ev state.Event) state.Transition {
	events.Input.Key(ev.Kind.String(), ev.Raw)
	tr := engine.Apply(ev)
	if tr.Action.Kind == state.ActionInvalid {
		events.Nav.Invalid(tr.Action.Raw)
	}
	events.Nav.Transition(tr.Action.Kind.String(), tr.View.Heading, tr.View.SubItem, tr.View.Narration)
	return tr
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.engine.Done() {
		return tea.Quit
	}
	dispatch(m.engine, m.keys.eventForKey(keyMsg))
	if m.engine.Done() {
		return tea.Quit
	}
	return nil
}
