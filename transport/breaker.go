package transport

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
)

// Breaker defaults
const (
	DefaultMaxFailures = 5
	DefaultOpenTimeout = 60 * time.Second
)

// ErrCircuitOpen is returned while the breaker rejects requests
var ErrCircuitOpen = gobreaker.ErrOpenState

var errServerFailure = errors.New("server failure")

// BreakerConfig configures the circuit breaker
type BreakerConfig struct {
	Enabled bool
	// MaxFailures consecutive failures open the breaker
	MaxFailures uint32
	// OpenTimeout is how long the breaker stays open before probing
	OpenTimeout time.Duration
}

func newBreaker(cfg BreakerConfig, logger zerolog.Logger) *gobreaker.CircuitBreaker[reply] {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = DefaultMaxFailures
	}
	openTimeout := cfg.OpenTimeout
	if openTimeout <= 0 {
		openTimeout = DefaultOpenTimeout
	}

	var st gobreaker.Settings
	st.Name = "ean-db"
	st.Timeout = openTimeout
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		return counts.ConsecutiveFailures >= maxFailures
	}
	// a caller giving up is not the server's fault
	st.IsSuccessful = func(err error) bool {
		return err == nil || errors.Is(err, context.Canceled)
	}
	st.OnStateChange = func(name string, from, to gobreaker.State) {
		logger.Warn().
			Str("breaker", name).
			Str("from", from.String()).
			Str("to", to.String()).
			Msg("Circuit breaker state changed")
	}

	return gobreaker.NewCircuitBreaker[reply](st)
}
