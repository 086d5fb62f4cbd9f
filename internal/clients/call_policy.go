package clients

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"
)

// CallPolicy bounds every outbound YouTube call. MaxAttempts of 1 disables
// retries; a zero Timeout leaves the call unbounded.
type CallPolicy struct {
	MaxAttempts    int
	Timeout        time.Duration
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

func DefaultCallPolicy() CallPolicy {
	return CallPolicy{
		MaxAttempts:    1,
		Timeout:        15 * time.Second,
		InitialBackoff: INITIAL_BACKOFF,
		MaxBackoff:     MAX_BACKOFF,
	}
}

// Do runs call under the policy. Only transport failures and 5xx answers are
// retried; the last error is returned unchanged.
func (p CallPolicy) Do(ctx context.Context, name string, call func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	if attempts > MAX_RETRIES {
		attempts = MAX_RETRIES
	}
	backoff := p.InitialBackoff

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = p.once(ctx, call)
		if lastErr == nil {
			return nil
		}
		if attempt == attempts || !retryable(lastErr) || ctx.Err() != nil {
			break
		}

		slog.Warn("[YouTubeClient] Request failed, will retry",
			slog.String("call", name),
			slog.Int("attempt", attempt),
			slog.Duration("backoff", backoff),
			slog.String("error", lastErr.Error()))

		select {
		case <-ctx.Done():
			return lastErr
		case <-time.After(backoff):
		}

		backoff *= 2
		if p.MaxBackoff > 0 && backoff > p.MaxBackoff {
			backoff = p.MaxBackoff
		}
	}
	return lastErr
}

func (p CallPolicy) once(ctx context.Context, call func(ctx context.Context) error) error {
	if p.Timeout <= 0 {
		return call(ctx)
	}
	callCtx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()
	return call(callCtx)
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code >= http.StatusInternalServerError
	}
	return true
}
