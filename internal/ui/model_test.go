package ui

import (
	"testing"

	"github.com/atomicstack/ringmenu/internal/menu"
	"github.com/atomicstack/ringmenu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T, width, height int, footer bool) *Model {
	t.Helper()
	store, err := menu.Default()
	if err != nil {
		t.Fatalf("build default menu: %v", err)
	}
	return NewModel(state.NewEngine(store), width, height, footer)
}

func TestNewModelPinsDimensions(t *testing.T) {
	m := newTestModel(t, 80, 24, false)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 80 || m.height != 24 {
		t.Fatalf("expected fixed 80x24, got %dx%d", m.width, m.height)
	}

	m = newTestModel(t, 0, 0, false)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.height != 40 {
		t.Fatalf("expected 120x40 from window size, got %dx%d", m.width, m.height)
	}
}

func TestInitReturnsNoCommand(t *testing.T) {
	if cmd := newTestModel(t, 0, 0, false).Init(); cmd != nil {
		t.Fatalf("expected nil init command")
	}
}

func TestUnknownMessageIsIgnored(t *testing.T) {
	m := newTestModel(t, 0, 0, false)
	type stray struct{}
	if _, cmd := m.Update(stray{}); cmd != nil {
		t.Fatalf("expected no command for unknown message")
	}
	if m.Engine().Snapshot().LastAction != state.ActionNone {
		t.Fatalf("expected engine untouched")
	}
}

func TestHotkeyLetters(t *testing.T) {
	got := hotkeyLetters([]string{"File", "Edit", "eXtra", "Xray", "42", "Search"})
	want := []string{"f", "e", "s"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestEventForKey(t *testing.T) {
	keys := newKeyMap([]string{"File"})
	cases := []struct {
		msg  tea.KeyMsg
		kind state.EventKind
	}{
		{keyMsg("up"), state.EventUp},
		{keyMsg("down"), state.EventDown},
		{keyMsg("left"), state.EventLeft},
		{keyMsg("right"), state.EventRight},
		{keyMsg("ctrl+c"), state.EventExit},
		{keyMsg("f"), state.EventRune},
		{keyMsg(" "), state.EventRune},
		{keyMsg("enter"), state.EventInvalid},
	}
	for _, tc := range cases {
		if got := keys.eventForKey(tc.msg).Kind; got != tc.kind {
			t.Fatalf("expected %s for %q, got %s", tc.kind, tc.msg.String(), got)
		}
	}
	if ev := keys.eventForKey(keyMsg("enter")); ev.Raw != "enter" {
		t.Fatalf("expected raw enter, got %q", ev.Raw)
	}
}
