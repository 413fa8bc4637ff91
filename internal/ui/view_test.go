package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/ringmenu/internal/menu"
	"github.com/atomicstack/ringmenu/internal/testutil"
	"github.com/atomicstack/ringmenu/internal/theme"
	"github.com/atomicstack/ringmenu/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
)

func plainFrame(t *testing.T, width, height int, evs ...state.Event) string {
	t.Helper()
	store, err := menu.Default()
	if err != nil {
		t.Fatalf("build default menu: %v", err)
	}
	engine := state.NewEngine(store)
	for _, ev := range evs {
		engine.Apply(ev)
	}
	return Render(engine.Snapshot(), RenderOptions{Width: width, Height: height, Styles: theme.Plain()})
}

func TestRenderClosedMenu(t *testing.T) {
	view := plainFrame(t, 0, 0)
	for _, want := range []string{bannerNavigate, bannerHotkeys, "[File]", " Edit ", " Search ", " Help "} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
	if strings.Contains(view, "▌") {
		t.Fatalf("expected no sub-items while closed, got:\n%s", view)
	}
}

func TestRenderOpenSubMenuUnderHeading(t *testing.T) {
	view := plainFrame(t, 0, 0, state.Arrow(state.EventDown), state.Arrow(state.EventDown))
	for _, want := range []string{"\n▌ New", "\n▌ Open", "\n▌ Save As"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
	if !strings.Contains(view, "You pressed the DOWN arrow key moving from New to Open.") {
		t.Fatalf("expected narration in view, got:\n%s", view)
	}

	view = plainFrame(t, 0, 0, state.Arrow(state.EventRight), state.Arrow(state.EventDown))
	indent := strings.Repeat(" ", lipgloss.Width(" File ")+len(headingGap))
	if !strings.Contains(view, "\n"+indent+"▌ Cut") {
		t.Fatalf("expected Edit items indented by %d, got:\n%s", len(indent), view)
	}
	if !strings.Contains(view, "[Edit]") {
		t.Fatalf("expected Edit highlighted, got:\n%s", view)
	}
}

func TestRenderNarrationOrder(t *testing.T) {
	view := plainFrame(t, 0, 0, state.Arrow(state.EventUp))
	bar := strings.Index(view, "[File]")
	narration := strings.Index(view, "nothing happened")
	if bar < 0 || narration < 0 || narration < bar {
		t.Fatalf("expected narration after heading bar, got:\n%s", view)
	}
}

func TestRenderRespectsWidth(t *testing.T) {
	view := plainFrame(t, 20, 0, state.Arrow(state.EventDown))
	for _, line := range strings.Split(view, "\n") {
		if w := lipgloss.Width(line); w > 20 {
			t.Fatalf("expected line width <= 20, got %d for %q", w, line)
		}
	}
	if !strings.Contains(view, "…") {
		t.Fatalf("expected truncation marker, got:\n%s", view)
	}
}

func TestRenderRespectsHeight(t *testing.T) {
	view := plainFrame(t, 0, 3, state.Arrow(state.EventDown))
	lines := strings.Split(view, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), view)
	}
	if lines[2] != "…" {
		t.Fatalf("expected ellipsis on last line, got %q", lines[2])
	}
}

func TestViewShowsFooterHelp(t *testing.T) {
	m := newTestModel(t, 0, 0, true)
	view := m.View()
	if !strings.Contains(view, "f/e/s/h") || !strings.Contains(view, " • ") {
		t.Fatalf("expected footer help, got:\n%s", view)
	}
	plain := newTestModel(t, 0, 0, false).View()
	if strings.Contains(plain, "f/e/s/h") || strings.Contains(plain, " • ") {
		t.Fatalf("expected no footer when disabled, got:\n%s", plain)
	}
	if got, want := strings.Count(view, "\n"), strings.Count(plain, "\n")+2; got != want {
		t.Fatalf("expected footer to add a blank line and a help line, got %d newlines want %d", got, want)
	}
}

func TestRenderAppliesFooterStyle(t *testing.T) {
	st := theme.Plain()
	footerStyle := lipgloss.NewStyle().PaddingLeft(2)
	st.Footer = &footerStyle
	view := Render(state.Snapshot{Headings: []string{"File"}, SubItem: -1}, RenderOptions{Styles: st, Footer: "x exit"})
	lines := strings.Split(view, "\n")
	if last := lines[len(lines)-1]; last != "  x exit" {
		t.Fatalf("expected padded footer line, got %q", last)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("abcdef", 4); got != "abc…" {
		t.Fatalf("expected abc…, got %q", got)
	}
	if got := truncateText("abc", 0); got != "abc" {
		t.Fatalf("expected unchanged text, got %q", got)
	}
	if got := truncateText("abc", 1); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
}

func TestRenderGoldenFrames(t *testing.T) {
	down := state.Arrow(state.EventDown)
	right := state.Arrow(state.EventRight)
	cases := []struct {
		golden string
		events []state.Event
	}{
		{golden: "frame_closed.golden"},
		{golden: "frame_file_open.golden", events: []state.Event{down, down}},
		{golden: "frame_edit_open.golden", events: []state.Event{right, down}},
	}
	for _, tc := range cases {
		t.Run(tc.golden, func(t *testing.T) {
			testutil.AssertGolden(t, tc.golden, plainFrame(t, 0, 0, tc.events...))
		})
	}
}
