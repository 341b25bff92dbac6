package testmail

import (
	"context"
	"time"
)

// clock abstracts time so the receive poller can be driven by a fake in
// tests instead of real timers.
type clock interface {
	Now() time.Time
	// Sleep blocks for d or until the context is cancelled, in which
	// case it returns the context's error.
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
