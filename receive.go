package testmail

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/testmail-app/client-go/internal/api"
)

// ReceiveEmails polls the inbox at a fixed interval until at least one
// email newer than the inbox watermark arrives, then returns all of them
// and advances the watermark to the current time.
//
// The inbox defaults to the client's current inbox; ErrNoInboxAvailable
// is returned when neither is usable. The timeout defaults to the
// client's configured receive timeout and can be overridden per call
// with WithTimeout. When the budget runs out without email the call
// fails with ErrEmailTimeout.
//
// A poll that fails or comes back empty is treated as "not yet" and
// retried on the next interval. The one exception is an authentication
// failure, which aborts immediately: a rejected API key cannot succeed
// on a later attempt. The interval is charged against the budget up
// front, so wall-clock time can overrun the nominal timeout by the sum
// of the network round trips.
func (c *Client) ReceiveEmails(ctx context.Context, opts ...ReceiveOption) ([]*Email, error) {
	cfg := &receiveConfig{
		timeout: c.receiveTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	inbox := cfg.inbox
	if inbox == nil {
		inbox, _ = c.CurrentInbox()
	}
	if !inbox.valid() {
		return nil, ErrNoInboxAvailable
	}

	remaining := cfg.timeout
	attempts := 0
	var lastErr error

	for remaining > 0 {
		if err := c.clock.Sleep(ctx, c.pollInterval); err != nil {
			return nil, err
		}
		remaining -= c.pollInterval
		attempts++

		result, err := c.api.InboxEmails(ctx, api.InboxQuery{
			Namespace:     inbox.namespace,
			Tag:           inbox.tag,
			TimestampFrom: inbox.watermark,
		})
		if err != nil {
			err = wrapError(err)
			if errors.Is(err, ErrUnauthorized) {
				return nil, err
			}
			lastErr = err
			c.logger.Debug("poll failed",
				zap.String("address", inbox.Address()),
				zap.Int("attempt", attempts),
				zap.Error(err))
			continue
		}

		if result.Result == api.ResultSuccess && len(result.Emails) > 0 {
			inbox.watermark = c.clock.Now().UnixMilli()
			c.logger.Debug("emails received",
				zap.String("address", inbox.Address()),
				zap.Int("count", len(result.Emails)),
				zap.Int("attempt", attempts))
			return convertEmails(result.Emails), nil
		}

		c.logger.Debug("no new emails",
			zap.String("address", inbox.Address()),
			zap.Int("attempt", attempts))
	}

	return nil, &TimeoutError{
		Timeout:  cfg.timeout,
		Attempts: attempts,
		LastErr:  lastErr,
	}
}

// ReceiveEmail waits like ReceiveEmails and returns only the first new
// email.
func (c *Client) ReceiveEmail(ctx context.Context, opts ...ReceiveOption) (*Email, error) {
	emails, err := c.ReceiveEmails(ctx, opts...)
	if err != nil {
		return nil, err
	}
	// ReceiveEmails only succeeds with a non-empty list.
	return emails[0], nil
}

func convertEmails(raw []api.Email) []*Email {
	emails := make([]*Email, 0, len(raw))
	for _, e := range raw {
		emails = append(emails, convertEmail(e))
	}
	return emails
}

func convertEmail(e api.Email) *Email {
	email := &Email{
		ID:         e.ID,
		From:       e.From,
		To:         e.To,
		Subject:    e.Subject,
		Text:       e.Text,
		HTML:       e.HTML,
		ReceivedAt: time.UnixMilli(int64(e.Timestamp)),
	}
	for _, a := range e.Attachments {
		email.Attachments = append(email.Attachments, Attachment{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			DownloadURL: a.DownloadURL,
		})
	}
	return email
}
