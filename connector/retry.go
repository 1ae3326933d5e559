package connector

import (
	"context"
	"time"
)

// retryConnect attempts connectFn with exponential backoff until it
// succeeds, retries are exhausted, or the context is done.
func retryConnect(ctx context.Context, cfg *RetryConfig, connectFn func(context.Context) error) error {
	delay := cfg.BaseDelay
	if delay == 0 {
		delay = time.Second
	}

	var err error
	for i := 0; i <= cfg.MaxRetries; i++ {
		if err = connectFn(ctx); err == nil {
			return nil
		}
		// No backoff after the final attempt.
		if i == cfg.MaxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
			if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
				delay = cfg.MaxDelay
			}
		}
	}
	return err
}
