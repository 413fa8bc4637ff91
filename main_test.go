package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/ringmenu/internal/app"
)

func TestInspectStreamsReportsNonTerminals(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	defer f.Close()

	infos := inspectStreams([]stream{{name: "file", fd: int(f.Fd())}, {name: "closed", fd: -1}})
	if len(infos) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(infos))
	}
	for _, p := range infos {
		if p.IsTerminal || p.Width != 0 || p.Height != 0 {
			t.Fatalf("expected %s to be reported as a non-terminal, got %#v", p.Name, p)
		}
	}
	if infos[0].Name != "file" || infos[1].Name != "closed" {
		t.Fatalf("expected entry order to follow input, got %#v", infos)
	}
}

func TestFitToTerminalSizesRawFrames(t *testing.T) {
	infos := []streamInfo{
		{Name: "stdout"},
		{Name: "stdin", IsTerminal: true, Width: 100, Height: 30},
	}
	got := fitToTerminal(app.Config{Frontend: app.FrontendRaw}, infos)
	if got.Width != 100 || got.Height != 29 {
		t.Fatalf("expected 100x29, got %dx%d", got.Width, got.Height)
	}
}

func TestFitToTerminalKeepsExplicitSize(t *testing.T) {
	infos := []streamInfo{{Name: "stdout", IsTerminal: true, Width: 100, Height: 30}}
	got := fitToTerminal(app.Config{Frontend: app.FrontendRaw, Width: 60}, infos)
	if got.Width != 60 || got.Height != 29 {
		t.Fatalf("expected 60x29, got %dx%d", got.Width, got.Height)
	}
}

func TestFitToTerminalLeavesTUIAlone(t *testing.T) {
	infos := []streamInfo{{Name: "stdout", IsTerminal: true, Width: 100, Height: 30}}
	cfg := app.Config{Frontend: app.FrontendTUI}
	if got := fitToTerminal(cfg, infos); got != cfg {
		t.Fatalf("expected tui config untouched, got %#v", got)
	}
}

func TestFitToTerminalWithoutTerminal(t *testing.T) {
	cfg := app.Config{Frontend: app.FrontendRaw}
	if got := fitToTerminal(cfg, []streamInfo{{Name: "stdout", Error: "not a tty"}}); got != cfg {
		t.Fatalf("expected unbounded frame without a terminal, got %#v", got)
	}
}
