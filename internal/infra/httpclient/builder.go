package httpclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/aalvaropc/aoc/internal/domain"
)

// RequestSpec describes a body-less request.
type RequestSpec struct {
	Method  string
	URL     string
	Headers map[string]string
	Cookies map[string]string
}

// BuildRequest builds an HTTP request from spec. Method defaults to GET.
func BuildRequest(ctx context.Context, spec RequestSpec) (*http.Request, error) {
	raw := strings.TrimSpace(spec.URL)
	if raw == "" {
		return nil, invalid(errEmptyURL)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, invalid(err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, invalid(&url.Error{Op: "parse", URL: raw, Err: errScheme})
	}

	method := strings.ToUpper(strings.TrimSpace(spec.Method))
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, invalid(err)
	}

	for k, v := range spec.Headers {
		req.Header.Set(k, v)
	}
	for name, value := range spec.Cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	return req, nil
}

type buildError string

func (e buildError) Error() string { return string(e) }

const (
	errEmptyURL = buildError("url is empty")
	errScheme   = buildError("url scheme must be http or https")
)

func invalid(err error) error {
	return &domain.OpError{
		Op:   "httpclient.build",
		Kind: domain.KindInvalidConfig,
		Err:  err,
	}
}
