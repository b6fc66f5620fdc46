package inference

import (
	"context"
	"time"
)

// RetryPolicy retries an operation a fixed number of times with a fixed
// delay between attempts. The last error is returned after exhaustion.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

// DefaultRetry matches the outbound-call policy used across the app.
var DefaultRetry = RetryPolicy{Attempts: 3, Delay: 5 * time.Second}

// Do runs fn up to p.Attempts times, sleeping p.Delay between failures.
// Context cancellation aborts the wait and returns ctx.Err().
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	attempts := p.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.Delay):
		}
	}
	return err
}
