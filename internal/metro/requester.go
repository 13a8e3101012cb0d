package metro

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"golang.org/x/time/rate"
	"metro.transit.dev/internal/logging"
)

// Requester performs a GET against a path relative to the API base and
// returns the decoded JSON object.
type Requester interface {
	GetJSON(ctx context.Context, path string) (Document, error)
}

// RequesterConfig configures an HTTPRequester.
type RequesterConfig struct {
	// BaseURL is the absolute URL every request path is resolved against.
	BaseURL string
	// Timeout bounds a whole request including reading the body. Zero means
	// no client-side timeout.
	Timeout time.Duration
	// RateLimit caps outbound requests per second. Zero disables throttling.
	RateLimit float64
	// HTTPClient replaces the default client. Timeout is ignored when set.
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// HTTPRequester is the net/http implementation of Requester. It is safe for
// concurrent use.
type HTTPRequester struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewHTTPRequester validates config and builds a requester. Unless a client is
// supplied, responses are requested gzip-encoded and decoded transparently.
func NewHTTPRequester(config RequesterConfig) (*HTTPRequester, error) {
	base, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", config.BaseURL, err)
	}
	if !base.IsAbs() || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: must be absolute", config.BaseURL)
	}
	if config.RateLimit < 0 {
		return nil, errors.New("rate limit must not be negative")
	}

	client := config.HTTPClient
	if client == nil {
		client = &http.Client{
			Timeout:   config.Timeout,
			Transport: gzhttp.Transport(http.DefaultTransport),
		}
	}

	var limiter *rate.Limiter
	if config.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RateLimit), 1)
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &HTTPRequester{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		client:  client,
		limiter: limiter,
		logger:  logger.With(slog.String("component", "metro_requester")),
	}, nil
}

// URL resolves path against the base URL. A trailing slash on path is kept.
func (r *HTTPRequester) URL(path string) string {
	return r.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (r *HTTPRequester) GetJSON(ctx context.Context, path string) (Document, error) {
	target := r.URL(path)

	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return Document{}, &TransportError{Method: http.MethodGet, URL: target, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Document{}, &TransportError{Method: http.MethodGet, URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		logging.LogError(r.logger, "metro request failed", err, slog.String("path", path))
		return Document{}, &TransportError{Method: http.MethodGet, URL: target, Err: err}
	}
	defer logging.SafeCloseWithLogging(resp.Body, r.logger, "metro_response_body")

	logging.LogOperation(r.logger, "metro_request",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Document{}, &TransportError{Method: http.MethodGet, URL: target, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Document{}, &TransportError{Method: http.MethodGet, URL: target, Err: fmt.Errorf("reading body: %w", err)}
	}

	return ParseDocument(body)
}
