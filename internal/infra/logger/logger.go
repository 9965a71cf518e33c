// Package logger owns the process-wide structured logger. Until Setup runs,
// everything logged through L is discarded.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aalvaropc/aoc/internal/domain"
)

const (
	// Dir is the log directory relative to the workspace root.
	Dir      = ".aoc/logs"
	FileName = "aoc.log"

	// DefaultMaxBytes is the size at which Setup rotates aoc.log to aoc.log.1.
	DefaultMaxBytes = 5 << 20
)

type Config struct {
	Root  string
	Debug bool
	// MaxBytes overrides DefaultMaxBytes; negative disables rotation.
	MaxBytes int64
	// Output overrides the log file; used by tests.
	Output io.Writer
}

type state struct {
	log   *slog.Logger
	file  *os.File
	path  string
	ready bool
}

var (
	mu  sync.RWMutex
	cur = state{log: discard()}
)

// Setup installs a JSON logger writing to <root>/.aoc/logs/aoc.log and returns
// a cleanup func that closes the file and restores the discard logger.
func Setup(cfg Config) (func() error, error) {
	next := state{ready: true}
	w := cfg.Output
	if w == nil {
		f, path, err := openLogFile(cfg.Root, cfg.MaxBytes)
		if err != nil {
			install(state{log: discard()})
			return nil, err
		}
		next.file, next.path, w = f, path, f
	}

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}
	if cfg.Debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	next.log = slog.New(slog.NewJSONHandler(w, opts))

	install(next)
	next.log.Info("logger.initialized", "path", next.path, "debug", cfg.Debug)

	return func() error {
		prev := install(state{log: discard()})
		if prev.file != nil {
			return prev.file.Close()
		}
		return nil
	}, nil
}

func openLogFile(root string, maxBytes int64) (*os.File, string, error) {
	if root == "" {
		root = "."
	}
	dir := filepath.Join(filepath.Clean(root), filepath.FromSlash(Dir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", err
	}

	path := filepath.Join(dir, FileName)
	if maxBytes == 0 {
		maxBytes = DefaultMaxBytes
	}
	if maxBytes > 0 {
		if info, err := os.Stat(path); err == nil && info.Size() >= maxBytes {
			_ = os.Rename(path, path+".1")
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}

// install swaps the global state and returns the previous one.
func install(s state) state {
	mu.Lock()
	defer mu.Unlock()
	prev := cur
	cur = s
	return prev
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return cur.log
}

// ForDay returns L with the puzzle day attached.
func ForDay(k domain.Key) *slog.Logger {
	return L().With("year", k.Year, "day", k.Day)
}

// Path is the active log file, or empty when logging is discarded or goes to
// a custom writer.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return cur.path
}

// IsReady reports an error until Setup has installed a logger.
func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if !cur.ready {
		return errors.New("logger not initialized")
	}
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
