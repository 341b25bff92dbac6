package testmail

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultPollInterval   = 5 * time.Second
	defaultReceiveTimeout = 240 * time.Second
	defaultTagLength      = 8
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	endpoint       string
	httpClient     *http.Client
	pollInterval   time.Duration
	receiveTimeout time.Duration
	tagLength      int
	retries        int
	logger         *zap.Logger
}

// inboxConfig holds configuration for HaveInbox.
type inboxConfig struct {
	address string
	tag     string
}

// receiveConfig holds configuration for a single receive operation.
type receiveConfig struct {
	inbox   *Inbox
	timeout time.Duration
}

// Option configures the client.
type Option func(*clientConfig)

// InboxOption configures inbox creation.
type InboxOption func(*inboxConfig)

// ReceiveOption configures a receive operation.
type ReceiveOption func(*receiveConfig)

// WithEndpoint sets the GraphQL endpoint URL.
func WithEndpoint(url string) Option {
	return func(c *clientConfig) {
		c.endpoint = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithPollInterval sets the delay between polls while waiting for email.
// Default: 5 seconds.
func WithPollInterval(interval time.Duration) Option {
	return func(c *clientConfig) {
		c.pollInterval = interval
	}
}

// WithDefaultTimeout sets the default receive timeout, used when a
// receive operation does not override it. Default: 240 seconds.
func WithDefaultTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.receiveTimeout = timeout
	}
}

// WithTagLength sets the length of generated inbox tags. Default: 8.
func WithTagLength(length int) Option {
	return func(c *clientConfig) {
		c.tagLength = length
	}
}

// WithRetries sets the number of transport-level retries per API call.
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithLogger sets a logger for debug output from the poller and
// transport. Default: a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithAddress reconstructs the inbox from an existing address instead of
// generating a fresh tag. The address must match
// {namespace}.{tag}@inbox.testmail.app.
func WithAddress(address string) InboxOption {
	return func(c *inboxConfig) {
		c.address = address
	}
}

// WithTag uses the given tag instead of generating a random one. The tag
// must be alphanumeric.
func WithTag(tag string) InboxOption {
	return func(c *inboxConfig) {
		c.tag = tag
	}
}

// WithInbox selects the inbox to receive from instead of the client's
// current inbox.
func WithInbox(inbox *Inbox) ReceiveOption {
	return func(c *receiveConfig) {
		c.inbox = inbox
	}
}

// WithTimeout overrides the receive timeout for one operation.
func WithTimeout(timeout time.Duration) ReceiveOption {
	return func(c *receiveConfig) {
		c.timeout = timeout
	}
}
