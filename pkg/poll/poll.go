// Package poll provides a bounded polling loop shared by callers that wait
// on remote asynchronous jobs.
package poll

import (
	"context"
	"errors"
	"time"
)

// ErrTimedOut is returned when the attempt budget is exhausted before the
// polled operation reports done. Callers distinguish it from operation
// failure with errors.Is.
var ErrTimedOut = errors.New("poll: attempt budget exhausted")

// CheckFunc inspects the remote job once. Returning done stops the loop
// successfully; returning an error stops it with that error.
type CheckFunc func(ctx context.Context) (done bool, err error)

// Until calls fn up to maxAttempts times, sleeping interval between
// attempts. It stops early when fn reports done or fails, or when ctx is
// cancelled. Exhausting the budget returns ErrTimedOut.
func Until(ctx context.Context, interval time.Duration, maxAttempts int, fn CheckFunc) error {
	if maxAttempts <= 0 {
		return ErrTimedOut
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(interval):
			}
		}

		done, err := fn(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}

	return ErrTimedOut
}
