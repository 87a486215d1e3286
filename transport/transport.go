// Package transport is the HTTP side of the ean-db client. It injects the
// bearer token and Accept header, applies timeouts and retries, and can guard
// the API behind a circuit breaker. It implements eandb.Transport.
package transport

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
	"resty.dev/v3"
)

// DefaultBaseURL is the public ean-db endpoint
const DefaultBaseURL = "https://ean-db.com"

// DefaultTimeout applies when Config.Timeout is zero
const DefaultTimeout = 30 * time.Second

// ErrEmptyToken is returned when no JWT is configured
var ErrEmptyToken = errors.New("JWT is empty")

// Config configures an HTTPTransport
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Retries int
	Headers map[string]string
	Breaker BreakerConfig
}

// HTTPTransport performs authenticated GETs with resty
type HTTPTransport struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker[reply]
	logger  zerolog.Logger
}

type reply struct {
	status int
	body   []byte
}

// New creates a transport. The token is required.
func New(cfg Config, logger zerolog.Logger) (*HTTPTransport, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, ErrEmptyToken
	}
	if cfg.Retries < 0 {
		return nil, fmt.Errorf("retries must not be negative, got %d", cfg.Retries)
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(cfg.Token).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second).
		SetLogger(newRestyLogger(logger))

	for k, v := range cfg.Headers {
		client.SetHeader(k, v)
	}

	t := &HTTPTransport{
		client: client,
		logger: logger,
	}
	if cfg.Breaker.Enabled {
		t.breaker = newBreaker(cfg.Breaker, logger)
	}

	logger.Debug().
		Str("base_url", baseURL).
		Dur("timeout", timeout).
		Int("retries", cfg.Retries).
		Bool("breaker", cfg.Breaker.Enabled).
		Msg("HTTP transport ready")

	return t, nil
}

// Get implements eandb.Transport. Any response the server sends, including
// 4xx and 5xx, is returned with a nil error.
func (t *HTTPTransport) Get(ctx context.Context, path string) (int, []byte, error) {
	if t.breaker == nil {
		r, err := t.do(ctx, path)
		return r.status, r.body, err
	}

	r, err := t.breaker.Execute(func() (reply, error) {
		r, err := t.do(ctx, path)
		if err == nil && r.status >= 500 {
			return r, errServerFailure
		}
		return r, err
	})
	if errors.Is(err, errServerFailure) {
		return r.status, r.body, nil
	}
	if err != nil {
		return 0, nil, err
	}
	return r.status, r.body, nil
}

func (t *HTTPTransport) do(ctx context.Context, path string) (reply, error) {
	resp, err := t.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return reply{}, fmt.Errorf("GET %s: %w", path, err)
	}

	return reply{
		status: resp.StatusCode(),
		body:   []byte(resp.String()),
	}, nil
}

// State returns the circuit breaker state, or "disabled"
func (t *HTTPTransport) State() string {
	if t.breaker == nil {
		return "disabled"
	}
	return t.breaker.State().String()
}

// Close releases idle connections
func (t *HTTPTransport) Close() error {
	return t.client.Close()
}
