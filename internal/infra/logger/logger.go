package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/cartlab/internal/buildinfo"
)

// MaxSize is the size at which an existing log is moved to cartlab.log.1
// before a new session starts writing.
const MaxSize int64 = 4 << 20

type Config struct {
	Root  string
	Debug bool
}

type state struct {
	log     *slog.Logger
	file    *os.File
	path    string
	session string
}

var (
	mu  sync.RWMutex
	cur = discard()
)

func discard() state {
	return state{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

// Setup points the package logger at <root>/.cartlab/logs/cartlab.log.
// Every record carries the session id of this process and the build version.
func Setup(cfg Config) (func() error, error) {
	root := filepath.Clean(cfg.Root)

	dir := filepath.Join(root, ".cartlab", "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		reset()
		return nil, err
	}

	path := filepath.Join(dir, "cartlab.log")
	if err := rotate(path, MaxSize); err != nil {
		reset()
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		reset()
		return nil, err
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

	id := uuid.NewString()
	l := slog.New(slog.NewJSONHandler(f, opts)).With(
		"session", id,
		"version", buildinfo.Version,
	)

	mu.Lock()
	cur = state{log: l, file: f, path: path, session: id}
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	return func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if cur.file == f {
			cerr = f.Close()
			cur = discard()
		}
		return cerr
	}, nil
}

// rotate moves path aside once it has grown past limit.
func rotate(path string, limit int64) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if info.Size() < limit {
		return nil
	}
	return os.Rename(path, path+".1")
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return cur.log
}

func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return cur.path
}

func Session() string {
	mu.RLock()
	defer mu.RUnlock()
	return cur.session
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if cur.file == nil {
		return errors.New("logger not initialized")
	}
	return nil
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	if cur.file != nil {
		_ = cur.file.Close()
	}
	cur = discard()
}
