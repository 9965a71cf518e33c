// Package aocfetch downloads personal puzzle inputs over HTTP.
package aocfetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/infra/httpclient"
	"github.com/aalvaropc/aoc/internal/infra/logger"
	"github.com/aalvaropc/aoc/internal/ports"
)

// Fetcher requests {base_url}/{year}/day/{day}/input authenticated by the
// session cookie.
type Fetcher struct {
	baseURL string
	session string
	exec    *httpclient.Executor
}

type Option func(*Fetcher)

func WithExecutor(e *httpclient.Executor) Option {
	return func(f *Fetcher) {
		if e != nil {
			f.exec = e
		}
	}
}

func New(cfg domain.FetchConfig, session string, opts ...Option) *Fetcher {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = domain.DefaultConfig().Fetch.BaseURL
	}
	f := &Fetcher{
		baseURL: base,
		session: strings.TrimSpace(session),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.exec == nil {
		f.exec = httpclient.NewExecutor()
	}
	return f
}

var _ ports.InputFetcher = (*Fetcher)(nil)

// URL returns the input endpoint for k.
func (f *Fetcher) URL(k domain.Key) string {
	return fmt.Sprintf("%s/%d/day/%d/input", f.baseURL, k.Year, k.Day)
}

func (f *Fetcher) Fetch(ctx context.Context, k domain.Key) (string, error) {
	if f.session == "" {
		return "", &domain.OpError{
			Op:   "aocfetch.fetch",
			Kind: domain.KindInvalidConfig,
			Key:  k,
			Err:  fmt.Errorf("no session token configured (set AOC_SESSION): %w", domain.ErrInvalidConfig),
		}
	}

	req, err := httpclient.BuildRequest(ctx, httpclient.RequestSpec{
		URL:     f.URL(k),
		Headers: map[string]string{"Accept": "text/plain"},
		Cookies: map[string]string{"session": f.session},
	})
	if err != nil {
		return "", err
	}

	log := logger.ForDay(k)
	log.Info("fetch.start", "url", req.URL.String())

	resp, err := f.exec.Do(ctx, req)
	if err != nil {
		log.Warn("fetch.error", "err", err, "duration_ms", resp.Elapsed.Milliseconds())
		return "", unavailable(k, err)
	}
	log.Info("fetch.done", "status", resp.Status, "bytes", len(resp.Body), "duration_ms", resp.Elapsed.Milliseconds())

	switch resp.Status {
	case http.StatusOK:
		return string(resp.Body), nil
	case http.StatusNotFound:
		return "", unavailable(k, errors.New("puzzle not found or not unlocked yet"))
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return "", unavailable(k, fmt.Errorf("session rejected (status %d)", resp.Status))
	default:
		return "", unavailable(k, fmt.Errorf("unexpected status %d: %s", resp.Status, snippet(resp.Body)))
	}
}

func unavailable(k domain.Key, err error) error {
	return &domain.OpError{
		Op:   "aocfetch.fetch",
		Kind: domain.KindInputUnavailable,
		Key:  k,
		Err:  fmt.Errorf("%w: %w", domain.ErrInputUnavailable, err),
	}
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 80 {
		s = s[:80] + "…"
	}
	return s
}
