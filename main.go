package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/ringmenu/internal/app"
	"github.com/atomicstack/ringmenu/internal/config"
	"github.com/atomicstack/ringmenu/internal/logging"
	"github.com/atomicstack/ringmenu/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	infos := inspectStreams([]stream{
		{name: "stdout", fd: int(os.Stdout.Fd())},
		{name: "stdin", fd: int(os.Stdin.Fd())},
	})
	runtimeCfg.App = fitToTerminal(runtimeCfg.App, infos)
	events.App.Start(map[string]interface{}{
		"argv":      runtimeCfg.Args,
		"flags":     runtimeCfg.Flags,
		"app":       runtimeCfg.App,
		"terminals": infos,
	})

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type stream struct {
	name string
	fd   int
}

type streamInfo struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// inspectStreams records, in order, which streams are terminals and their size.
func inspectStreams(streams []stream) []streamInfo {
	infos := make([]streamInfo, 0, len(streams))
	for _, s := range streams {
		info := streamInfo{Name: s.name}
		if s.fd >= 0 && term.IsTerminal(s.fd) {
			info.IsTerminal = true
			if w, h, err := term.GetSize(s.fd); err == nil {
				info.Width, info.Height = w, h
			} else {
				info.Error = err.Error()
			}
		}
		infos = append(infos, info)
	}
	return infos
}

// fitToTerminal sizes raw frames from the first terminal stream when no
// dimension was given. Bubble Tea tracks the size itself, so tui is left alone.
// The row after the frame holds the cursor, hence height-1.
func fitToTerminal(cfg app.Config, infos []streamInfo) app.Config {
	if cfg.Frontend != app.FrontendRaw {
		return cfg
	}
	for _, p := range infos {
		if !p.IsTerminal || p.Width <= 0 || p.Height <= 0 {
			continue
		}
		if cfg.Width == 0 {
			cfg.Width = p.Width
		}
		if cfg.Height == 0 && p.Height > 1 {
			cfg.Height = p.Height - 1
		}
		break
	}
	return cfg
}
