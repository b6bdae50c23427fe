// Package log provides the process-wide structured logger.
//
// It wraps log/slog with one shared level and a component convention:
// subsystems obtain their logger through Logger("name"), which attaches a
// component attribute. The shared level can be changed at runtime without
// rebuilding loggers that are already in use.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu    sync.Mutex
	level = new(slog.LevelVar)
	root  = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
)

// Logger returns a logger tagged with the given component name. All
// loggers share the output and level of the root logger at the time of
// the call.
func Logger(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return root.With("component", component)
}

// Default returns the untagged root logger.
func Default() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return root
}

// SetOutput rebuilds the root logger to write to w. Loggers obtained
// before the call keep their previous destination.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	root = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetLevel sets the shared level from its name: debug, info, warn or
// error. The change applies to every logger immediately.
func SetLevel(name string) error {
	switch strings.ToLower(name) {
	case "debug":
		level.Set(slog.LevelDebug)
	case "info":
		level.Set(slog.LevelInfo)
	case "warn", "warning":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	default:
		return fmt.Errorf("log: unknown level %q", name)
	}
	return nil
}

// Level returns the current shared level.
func Level() slog.Level {
	return level.Level()
}
