package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/ringmenu/internal/ui/state"
)

func TestHarnessScenario(t *testing.T) {
	h := NewHarness(newTestModel(t, 0, 0, false))
	engine := h.Model().Engine()

	h.Press("down")
	if got := engine.Store().ItemLabel(engine.Cursor().Item); got != "New" {
		t.Fatalf("expected New, got %q", got)
	}
	h.Press("down")
	if got := engine.Store().ItemLabel(engine.Cursor().Item); got != "Open" {
		t.Fatalf("expected Open, got %q", got)
	}
	h.Press("right")
	if c := engine.Cursor(); c.Heading != 1 || c.Open() {
		t.Fatalf("expected Edit with closed sub-menu, got %#v", c)
	}
	h.Press("h")
	if c := engine.Cursor(); c.Heading != 3 || c.Open() {
		t.Fatalf("expected Help with closed sub-menu, got %#v", c)
	}
	if view := h.View(); !strings.Contains(view, "using the 'H' hotkey") {
		t.Fatalf("expected hotkey narration in view, got:\n%s", view)
	}
	if h.Quit() {
		t.Fatalf("expected program still running")
	}
	h.Press("x")
	if !h.Quit() || !engine.Done() {
		t.Fatalf("expected quit after x")
	}
}

func TestCtrlCQuits(t *testing.T) {
	h := NewHarness(newTestModel(t, 0, 0, false))
	h.Press("ctrl+c")
	if !h.Quit() {
		t.Fatalf("expected quit on ctrl+c")
	}
	if got := h.Model().Engine().Snapshot().LastAction; got != state.ActionExit {
		t.Fatalf("expected exit action, got %s", got)
	}
}

func TestInvalidKeyIsNarrated(t *testing.T) {
	h := NewHarness(newTestModel(t, 0, 0, false))
	h.Press("enter")
	if h.Quit() {
		t.Fatalf("expected invalid key to keep running")
	}
	if view := h.View(); !strings.Contains(view, "invalid character (Entered: enter)") {
		t.Fatalf("expected invalid narration, got:\n%s", view)
	}
}

func TestKeysAfterExitKeepQuitting(t *testing.T) {
	h := NewHarness(newTestModel(t, 0, 0, false))
	h.Press("x")
	h.quit = false
	h.Press("right")
	if !h.Quit() {
		t.Fatalf("expected keys after exit to request quit again")
	}
	if c := h.Model().Engine().Cursor(); c.Heading != 0 {
		t.Fatalf("expected no movement after exit, got heading %d", c.Heading)
	}
}
