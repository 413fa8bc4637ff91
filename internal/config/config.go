package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/ringmenu/internal/app"
	"github.com/atomicstack/ringmenu/internal/keys"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envFrontend   = "RINGMENU_FRONTEND"
	envKeys       = "RINGMENU_KEYS"
	envWidth      = "RINGMENU_WIDTH"
	envHeight     = "RINGMENU_HEIGHT"
	envShowFooter = "RINGMENU_FOOTER"
	envTrace      = "RINGMENU_TRACE"
	envLogFile    = "RINGMENU_LOG_FILE"
)

// UsageError is returned when help was requested. It wraps pflag.ErrHelp.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string { return pflag.ErrHelp.Error() }

func (e *UsageError) Unwrap() error { return pflag.ErrHelp }

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Flags take
// precedence over environment values.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("ringmenu", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	frontend := fs.String("frontend", envOrDefault(env, envFrontend, app.FrontendTUI), "interaction frontend: tui or raw")
	keyTable := fs.String("keys", envOrDefault(env, envKeys, ""), "raw key code table: ansi (default) or conio")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable key help footer (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Config{}, &UsageError{Usage: fs.FlagUsages()}
		}
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Frontend:   strings.ToLower(strings.TrimSpace(*frontend)),
			KeyTable:   strings.ToLower(strings.TrimSpace(*keyTable)),
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"frontend": *frontend,
			"keys":     *keyTable,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	var usage *UsageError
	if errors.As(err, &usage) {
		fmt.Fprintf(os.Stderr, "Usage of ringmenu:\n%s", usage.Usage)
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects frontends and key tables the application cannot run.
func Validate(cfg Config) error {
	switch cfg.App.Frontend {
	case "", app.FrontendTUI, app.FrontendRaw:
	default:
		return fmt.Errorf("unknown frontend %q (want %s or %s)", cfg.App.Frontend, app.FrontendTUI, app.FrontendRaw)
	}
	if _, err := keys.TableByName(cfg.App.KeyTable); err != nil {
		return err
	}
	return nil
}
