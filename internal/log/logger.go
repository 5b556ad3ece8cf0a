// Package log provides the console logger shared by the webseo commands.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.)
	Output  io.Writer // optional writer (defaults to os.Stdout)
	JSON    bool      // emit JSON lines instead of console output
	NoColor bool
}

var (
	mu   sync.Mutex
	base zerolog.Logger
	set  bool
)

// Configure (re)initialises the base logger. Level falls back to LOG_LEVEL,
// then to info.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()

	level := zerolog.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	} else if env := os.Getenv("LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}
	zerolog.TimeFieldFormat = time.RFC3339

	writer := cfg.Output
	if writer == nil {
		writer = os.Stdout
	}
	if !cfg.JSON {
		writer = zerolog.ConsoleWriter{
			Out:        writer,
			NoColor:    cfg.NoColor,
			TimeFormat: time.TimeOnly,
		}
	}

	base = zerolog.New(writer).Level(level).With().Timestamp().Logger()
	set = true
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	mu.Lock()
	l, ok := base, set
	mu.Unlock()
	if ok {
		return l
	}
	Configure(Config{})
	return Base()
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}

// Nop returns a disabled logger, used by tests and library callers that do
// not want console output.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
