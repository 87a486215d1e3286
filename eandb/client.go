package eandb

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds LookupMany when no limit is configured
const DefaultConcurrency = 5

// Transport performs authenticated GET requests against the API.
// It returns the status code and body of any response it received;
// the error is reserved for requests that produced no response.
type Transport interface {
	Get(ctx context.Context, path string) (status int, body []byte, err error)
}

// Client looks up products by barcode
type Client struct {
	transport   Transport
	version     Version
	concurrency int
	logger      zerolog.Logger
}

// NewClient creates a new ean-db client on top of a transport
func NewClient(transport Transport, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if transport == nil {
		return nil, fmt.Errorf("%w: transport is required", ErrInvalidConfig)
	}

	c := &Client{
		transport:   transport,
		version:     DefaultVersion,
		concurrency: DefaultConcurrency,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	if !c.version.Valid() {
		return nil, fmt.Errorf("%w: %w: %s", ErrInvalidConfig, ErrUnsupportedVersion, c.version)
	}
	if c.concurrency < 1 {
		return nil, fmt.Errorf("%w: concurrency must be at least 1, got %d", ErrInvalidConfig, c.concurrency)
	}

	return c, nil
}

// Version returns the API version the client speaks
func (c *Client) Version() Version {
	return c.version
}

// Lookup fetches a barcode and returns the parsed envelope. Error responses
// (400, 403, 404) are returned as *ErrorResponse with a nil error.
func (c *Client) Lookup(ctx context.Context, barcode string) (Response, error) {
	path := c.version.Path(barcode)

	status, body, err := c.transport.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", barcode, err)
	}

	resp, err := Dispatch(status, body, c.version)
	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("barcode", barcode).
			Int("status", status).
			Msg("Failed to dispatch ean-db response")
		return nil, fmt.Errorf("lookup %s: %w", barcode, err)
	}

	event := c.logger.Debug().
		Str("barcode", barcode).
		Str("version", c.version.String()).
		Int("status", status)
	switch r := resp.(type) {
	case *SuccessResponse:
		event.Int("balance", r.Balance).Msg("Product found")
	case *ErrorResponse:
		event.Stringer("kind", r.Kind()).Str("description", r.Detail.Description).Msg("ean-db returned an error")
	}

	return resp, nil
}

// GetProduct is Lookup with error responses converted to *APIError
func (c *Client) GetProduct(ctx context.Context, barcode string) (*SuccessResponse, error) {
	resp, err := c.Lookup(ctx, barcode)
	if err != nil {
		return nil, err
	}

	switch r := resp.(type) {
	case *SuccessResponse:
		return r, nil
	case *ErrorResponse:
		return nil, r.Err()
	default:
		return nil, fmt.Errorf("unhandled response type %T", resp)
	}
}

// Result is the outcome of one lookup in a batch
type Result struct {
	Barcode  string
	Response Response
	Err      error
}

// Product returns the product of a successful lookup, or nil
func (r Result) Product() *SuccessResponse {
	if s, ok := r.Response.(*SuccessResponse); ok {
		return s
	}
	return nil
}

// LookupMany looks up barcodes concurrently. Results are in input order and
// one failed lookup does not stop the others.
func (c *Client) LookupMany(ctx context.Context, barcodes []string) []Result {
	results := make([]Result, len(barcodes))
	if len(barcodes) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(c.concurrency)

	for i, barcode := range barcodes {
		g.Go(func() error {
			result := Result{Barcode: barcode}
			if err := ctx.Err(); err != nil {
				result.Err = fmt.Errorf("lookup %s: %w", barcode, err)
			} else {
				result.Response, result.Err = c.Lookup(ctx, barcode)
			}
			// each goroutine owns its slot
			results[i] = result
			return nil
		})
	}

	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	c.logger.Debug().
		Int("requested", len(barcodes)).
		Int("failed", failed).
		Msg("Batch lookup finished")

	return results
}

// IsMalformed reports whether err is a *MalformedResponseError
func IsMalformed(err error) bool {
	var target *MalformedResponseError
	return errors.As(err, &target)
}

// IsUnexpectedStatus reports whether err is an *UnexpectedStatusError
func IsUnexpectedStatus(err error) bool {
	var target *UnexpectedStatusError
	return errors.As(err, &target)
}
