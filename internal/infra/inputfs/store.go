// Package inputfs keeps puzzle inputs as files under the workspace:
// <inputs_dir>/<year>/dayNN.txt.
package inputfs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/infra/logger"
	"github.com/aalvaropc/aoc/internal/input"
	"github.com/aalvaropc/aoc/internal/ports"
)

const DefaultExpiration = 10 * time.Minute

// Store is a file-backed InputSource with a read-through cache. A cached
// input is reused while the file's size and modification time are unchanged.
type Store struct {
	dir   string
	cache *gocache.Cache
}

type Option func(*options)

type options struct {
	ttl time.Duration
}

// WithTTL sets how long an unchanged input stays cached.
func WithTTL(d time.Duration) Option {
	return func(o *options) { o.ttl = d }
}

type entry struct {
	size    int64
	modTime time.Time
	in      input.Input
}

func New(root string, cfg domain.Config, opts ...Option) *Store {
	o := options{ttl: DefaultExpiration}
	for _, opt := range opts {
		opt(&o)
	}

	dir := cfg.Paths.InputsDir
	if strings.TrimSpace(dir) == "" {
		dir = domain.DefaultConfig().Paths.InputsDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}

	// No janitor goroutine: expired entries are dropped lazily on Get.
	return &Store{dir: dir, cache: gocache.New(o.ttl, 0)}
}

var (
	_ ports.InputSource = (*Store)(nil)
	_ ports.InputWriter = (*Store)(nil)
)

// Path returns where the input for k lives.
func (s *Store) Path(k domain.Key) string {
	return filepath.Join(s.dir, strconv.Itoa(k.Year), fmt.Sprintf("day%02d.txt", k.Day))
}

// Available reports whether an input file exists for k.
func (s *Store) Available(k domain.Key) bool {
	info, err := os.Stat(s.Path(k))
	return err == nil && info.Mode().IsRegular()
}

func (s *Store) Load(ctx context.Context, k domain.Key) (input.Input, error) {
	if err := ctx.Err(); err != nil {
		return input.Input{}, err
	}
	path := s.Path(k)

	info, err := os.Stat(path)
	if err != nil {
		return input.Input{}, unavailable(k, path, err)
	}

	if v, ok := s.cache.Get(path); ok {
		if e, ok := v.(entry); ok && e.size == info.Size() && e.modTime.Equal(info.ModTime()) {
			logger.ForDay(k).Debug("input.cache_hit", "path", path)
			return e.in, nil
		}
	}

	in, err := ReadFile(path)
	if err != nil {
		return input.Input{}, unavailable(k, path, err)
	}
	s.cache.SetDefault(path, entry{size: info.Size(), modTime: info.ModTime(), in: in})
	return in, nil
}

// Save writes text as the input for k. An existing file is kept unless
// overwrite is set.
func (s *Store) Save(k domain.Key, text string, overwrite bool) (string, error) {
	path := s.Path(k)

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return path, &domain.OpError{
				Op:   "inputfs.save",
				Kind: domain.KindExecution,
				Key:  k,
				Path: path,
				Err:  fmt.Errorf("input already present (use --force to replace): %w", os.ErrExist),
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", saveError(k, path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(text), 0o600); err != nil {
		return "", saveError(k, tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", saveError(k, path, err)
	}

	s.cache.Delete(path)
	return path, nil
}

// ReadFile loads an input from an arbitrary path.
func ReadFile(path string) (input.Input, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return input.Input{}, err
	}
	return input.New(string(b)), nil
}

func unavailable(k domain.Key, path string, err error) error {
	hint := ""
	if errors.Is(err, os.ErrNotExist) {
		hint = " (run `aoc fetch` or place the file manually)"
	}
	return &domain.OpError{
		Op:   "inputfs.load",
		Kind: domain.KindInputUnavailable,
		Key:  k,
		Path: path,
		Err:  fmt.Errorf("%w%s: %w", domain.ErrInputUnavailable, hint, err),
	}
}

func saveError(k domain.Key, path string, err error) error {
	return &domain.OpError{
		Op:   "inputfs.save",
		Kind: domain.KindExecution,
		Key:  k,
		Path: path,
		Err:  err,
	}
}
