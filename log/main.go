// Package log provides the logger shared by namesort packages. It stays
// silent until verbose mode is activated with the -v flag.
package log

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Options configures the handler behind the shared logger.
type Options struct {
	// JSON selects the JSON handler instead of the text one.
	JSON bool
	// MinLevel is the lowest level emitted when verbose.
	MinLevel slog.Level
	// Output defaults to os.Stderr.
	Output io.Writer
}

var (
	mu      sync.Mutex
	opts    = Options{MinLevel: slog.LevelDebug}
	verbose bool
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// GetLogger returns the shared logger.
func GetLogger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Configure replaces the handler options. The verbose state is kept.
func Configure(o Options) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	opts = o
	rebuild()
	return logger
}

// SetVerbose sets the verbose mode.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	rebuild()
}

// Or returns l when it is not nil, the shared logger otherwise.
func Or(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return GetLogger()
}

func rebuild() {
	var out io.Writer = io.Discard
	if verbose {
		out = opts.Output
		if out == nil {
			out = os.Stderr
		}
	}
	hopts := &slog.HandlerOptions{Level: opts.MinLevel}
	if opts.JSON {
		logger = slog.New(slog.NewJSONHandler(out, hopts))
		return
	}
	logger = slog.New(slog.NewTextHandler(out, hopts))
}
