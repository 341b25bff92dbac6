package testmail

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/testmail-app/client-go/internal/api"
)

// emailLister is the slice of the API client the receive poller needs.
// Tests substitute a fake.
type emailLister interface {
	InboxEmails(ctx context.Context, q api.InboxQuery) (*api.InboxResult, error)
}

// Client is the testmail.app client. It holds the API transport, the
// receive configuration, and at most one "current" inbox that receive
// operations fall back to when no inbox is passed explicitly.
//
// The current-inbox slot is session state scoped to this Client. Tests
// that need several inboxes at once should hold the *Inbox handles
// returned by HaveInbox and pass them via WithInbox rather than relying
// on the slot.
type Client struct {
	api            emailLister
	namespace      string
	pollInterval   time.Duration
	receiveTimeout time.Duration
	tagLength      int
	logger         *zap.Logger
	clock          clock

	mu      sync.RWMutex
	current *Inbox
}

// New creates a client for the given API key and account namespace.
// Both are required; the client fails fast if either is missing.
func New(apiKey, namespace string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if namespace == "" {
		return nil, ErrMissingNamespace
	}

	cfg := &clientConfig{
		pollInterval:   defaultPollInterval,
		receiveTimeout: defaultReceiveTimeout,
		tagLength:      defaultTagLength,
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		api:            apiClient,
		namespace:      namespace,
		pollInterval:   cfg.pollInterval,
		receiveTimeout: cfg.receiveTimeout,
		tagLength:      cfg.tagLength,
		logger:         cfg.logger,
		clock:          systemClock{},
	}, nil
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{
		api.WithLogger(cfg.logger),
	}
	if cfg.endpoint != "" {
		apiOpts = append(apiOpts, api.WithEndpoint(cfg.endpoint))
	}
	if cfg.retries > 0 {
		retry := api.DefaultRetryConfig()
		retry.MaxRetries = cfg.retries
		apiOpts = append(apiOpts, api.WithRetryConfig(retry))
	}

	apiClient, err := api.New(apiKey, apiOpts...)
	if err != nil {
		return nil, err
	}

	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}

	return apiClient, nil
}

// Namespace returns the client's default namespace.
func (c *Client) Namespace() string {
	return c.namespace
}

// HaveInbox creates a new inbox handle and makes it the client's current
// inbox, replacing any previous one.
//
// With no options it generates a random tag under the client's namespace.
// WithAddress reconstructs the handle from an existing address (the
// address's namespace overrides the client's); WithTag uses a fixed tag.
// Either way the watermark starts at the current time, so only emails
// arriving after this call count as new.
func (c *Client) HaveInbox(opts ...InboxOption) (*Inbox, error) {
	cfg := &inboxConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	namespace := c.namespace
	tag := cfg.tag

	switch {
	case cfg.address != "":
		var err error
		namespace, tag, err = ParseAddress(cfg.address)
		if err != nil {
			return nil, err
		}
	case tag != "":
		if !tagPattern.MatchString(tag) {
			return nil, fmt.Errorf("tag %q must be alphanumeric", tag)
		}
	default:
		tag = newTag(c.tagLength)
	}

	inbox := &Inbox{
		namespace: namespace,
		tag:       tag,
		watermark: c.clock.Now().UnixMilli(),
		client:    c,
	}

	c.mu.Lock()
	c.current = inbox
	c.mu.Unlock()

	c.logger.Debug("inbox ready",
		zap.String("address", inbox.Address()))

	return inbox, nil
}

// CurrentInbox returns the inbox created by the most recent HaveInbox
// call, if any.
func (c *Client) CurrentInbox() (*Inbox, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current, c.current != nil
}
