// Package guard wraps provider calls with a shared rate limit, a per-call
// timeout and retries with exponential back-off.
package guard

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go/v4"
	"golang.org/x/time/rate"

	"github.com/xilidan/interview/pkg/logger"
	"github.com/xilidan/interview/services/interview/clients"
)

type Config struct {
	RPS        float64
	Burst      int
	MaxRetries uint
	RetryDelay time.Duration
	Timeout    time.Duration
}

type Guard struct {
	limiter *rate.Limiter
	cfg     Config
}

func New(cfg Config) *Guard {
	limit := rate.Inf
	if cfg.RPS > 0 {
		limit = rate.Limit(cfg.RPS)
	}
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}
	return &Guard{
		limiter: rate.NewLimiter(limit, cfg.Burst),
		cfg:     cfg,
	}
}

// Do runs fn until it succeeds, returns an unrecoverable error or the retry
// budget is spent. Every attempt waits for the limiter first.
func (g *Guard) Do(ctx context.Context, op string, fn func(ctx context.Context) (string, error)) (string, error) {
	log := logger.FromContext(ctx)

	return retry.DoWithData(
		func() (string, error) {
			if err := g.limiter.Wait(ctx); err != nil {
				return "", retry.Unrecoverable(err)
			}

			callCtx, cancel := g.callContext(ctx)
			defer cancel()
			return fn(callCtx)
		},
		retry.Context(ctx),
		retry.Attempts(g.cfg.MaxRetries+1),
		retry.Delay(g.cfg.RetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, context.Canceled) && retry.IsRecoverable(err)
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Warn("provider call failed, retrying", "op", op, "attempt", n+1, "error", err)
		}),
	)
}

func (g *Guard) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.cfg.Timeout)
}

func (g *Guard) Generator(next clients.Generator) clients.Generator {
	return clients.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return g.Do(ctx, "generate", func(ctx context.Context) (string, error) {
			return next.Generate(ctx, prompt)
		})
	})
}

func (g *Guard) Transcriber(next clients.Transcriber) clients.Transcriber {
	return clients.TranscriberFunc(func(ctx context.Context, wavPath string) (string, error) {
		return g.Do(ctx, "transcribe", func(ctx context.Context) (string, error) {
			return next.Transcribe(ctx, wavPath)
		})
	})
}
