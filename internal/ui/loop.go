package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/ringmenu/internal/theme"
	"github.com/atomicstack/ringmenu/internal/ui/state"
	"github.com/charmbracelet/x/ansi"
)

// EventSource yields one logical key per call, blocking as needed.
type EventSource interface {
	Next() (state.Event, error)
}

// Loop is the byte-level frontend: clear, draw, read one key, repeat.
type Loop struct {
	engine *state.Engine
	source EventSource
	out    io.Writer
	opts   RenderOptions
	// CRLF translates line feeds for terminals in raw mode, where output
	// post-processing is disabled.
	CRLF bool
}

// NewLoop draws frames to out and reads keys from source.
func NewLoop(engine *state.Engine, source EventSource, out io.Writer, opts RenderOptions) *Loop {
	if opts.Styles == nil {
		opts.Styles = theme.Default()
	}
	return &Loop{engine: engine, source: source, out: out, opts: opts}
}

// Run cycles until the engine reports exit. End of input counts as exit.
func (l *Loop) Run() error {
	for !l.engine.Done() {
		if err := l.draw(); err != nil {
			return err
		}
		ev, err := l.source.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		dispatch(l.engine, ev)
	}
	return nil
}

func (l *Loop) draw() error {
	frame := Render(l.engine.Snapshot(), l.opts) + "\n"
	if l.CRLF {
		frame = strings.ReplaceAll(frame, "\n", "\r\n")
	}
	_, err := io.WriteString(l.out, ansi.EraseEntireScreen+ansi.CursorHomePosition+frame)
	return err
}
