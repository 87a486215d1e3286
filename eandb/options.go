package eandb

// Option configures a Client
type Option func(*Client)

// WithVersion selects the API version
func WithVersion(v Version) Option {
	return func(c *Client) {
		c.version = v
	}
}

// WithConcurrency sets how many lookups LookupMany runs at once
func WithConcurrency(n int) Option {
	return func(c *Client) {
		c.concurrency = n
	}
}
