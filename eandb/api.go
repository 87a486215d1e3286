package eandb

import (
	"context"
)

// API defines the interface for ean-db lookups
type API interface {
	// Lookup fetches a barcode and returns the parsed envelope
	Lookup(ctx context.Context, barcode string) (Response, error)

	// GetProduct fetches a barcode and fails on error responses
	GetProduct(ctx context.Context, barcode string) (*SuccessResponse, error)

	// LookupMany fetches several barcodes concurrently, preserving order
	LookupMany(ctx context.Context, barcodes []string) []Result
}

var _ API = (*Client)(nil)
