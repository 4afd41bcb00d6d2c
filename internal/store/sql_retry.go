package store

import (
	"context"
	"fmt"
	"time"
)

// retryDelays are the pauses between attempts of a retryable operation.
var retryDelays = []time.Duration{100 * time.Millisecond, 500 * time.Millisecond, time.Second}

// withRetry runs op and repeats it while the classificator reports the error
// as [Retryable]. A nil classificator disables retries.
func withRetry(ctx context.Context, classificator ErrorClassificator, op func(ctx context.Context) error) error {
	err := op(ctx)
	if err == nil || classificator == nil {
		return err
	}

	for _, delay := range retryDelays {
		if classificator.Classify(err) != Retryable {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		if err = op(ctx); err == nil {
			return nil
		}
	}

	if classificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return err
}
