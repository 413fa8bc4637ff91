package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atomicstack/ringmenu/internal/keys"
	"github.com/atomicstack/ringmenu/internal/logging/events"
	"github.com/atomicstack/ringmenu/internal/menu"
	"github.com/atomicstack/ringmenu/internal/ui"
	"github.com/atomicstack/ringmenu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	FrontendTUI = "tui"
	FrontendRaw = "raw"

	// Farewell is printed once the interaction loop ends.
	Farewell = "Exiting..."
)

// Config describes user-provided application options.
type Config struct {
	Frontend   string
	KeyTable   string
	Width      int
	Height     int
	ShowFooter bool
}

// Run executes the navigator on the process's standard streams.
func Run(cfg Config) error {
	return RunWith(cfg, os.Stdin, os.Stdout)
}

// RunWith builds the menu, runs the selected frontend until exit, then
// prints the farewell line to out.
func RunWith(cfg Config, in *os.File, out io.Writer) error {
	store, err := menu.Default()
	if err != nil {
		return fmt.Errorf("build menu: %w", err)
	}
	engine := state.NewEngine(store)

	switch strings.ToLower(cfg.Frontend) {
	case "", FrontendTUI:
		events.App.Frontend(FrontendTUI, "")
		err = runTUI(cfg, engine, in, out)
	case FrontendRaw:
		err = runRaw(cfg, engine, in, out)
	default:
		err = fmt.Errorf("unknown frontend %q", cfg.Frontend)
	}
	events.App.Exit(err)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, Farewell)
	return err
}

func runTUI(cfg Config, engine *state.Engine, in *os.File, out io.Writer) error {
	model := ui.NewModel(engine, cfg.Width, cfg.Height, cfg.ShowFooter)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// runRaw reads keys byte by byte. A terminal is switched to raw mode; any
// other input (a pipe or file) is decoded as-is.
func runRaw(cfg Config, engine *state.Engine, in *os.File, out io.Writer) error {
	table, err := keys.TableByName(cfg.KeyTable)
	if err != nil {
		return err
	}
	events.App.Frontend(FrontendRaw, table.Name)

	var src io.ByteReader
	crlf := false
	terminal, err := keys.OpenTerminal(in)
	switch {
	case err == nil:
		defer terminal.Restore()
		src = terminal
		crlf = true
	case errors.Is(err, keys.ErrNotTerminal):
		src = bufio.NewReader(in)
	default:
		return fmt.Errorf("enter raw mode: %w", err)
	}

	loop := ui.NewLoop(engine, keys.NewDecoder(src, table), out, ui.RenderOptions{
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	loop.CRLF = crlf
	return loop.Run()
}
