// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu         sync.RWMutex
	current    zerolog.Logger
	configured bool
)

// Init configures the process logger and returns it. level is one of trace,
// debug, info, warn or error (unrecognized values fall back to info). pretty
// switches from JSON to console output for local development. Calling Init
// again replaces the logger, which is mainly useful in tests.
func Init(level string, pretty bool) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	zerolog.TimeFieldFormat = time.RFC3339Nano

	var out io.Writer = os.Stdout
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	lvl := toLevel(level)
	zerolog.SetGlobalLevel(lvl)

	current = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	configured = true
	return current
}

// Get returns the logger set up by Init. Before Init runs it returns a
// disabled logger, so packages can call Get at any point without ordering
// concerns.
func Get() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if !configured {
		return zerolog.Nop()
	}
	return current
}

func toLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
