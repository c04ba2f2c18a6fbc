package guard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/xilidan/interview/services/interview/clients"
)

func testGuard(retries uint) *Guard {
	return New(Config{RPS: 1000, Burst: 10, MaxRetries: retries, RetryDelay: time.Millisecond})
}

func TestRetriesTransientErrors(t *testing.T) {
	var calls atomic.Int32
	gen := testGuard(3).Generator(clients.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		if calls.Add(1) < 3 {
			return "", errors.New("503 unavailable")
		}
		return "ok:" + prompt, nil
	}))

	got, err := gen.Generate(context.Background(), "p")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "ok:p" || calls.Load() != 3 {
		t.Errorf("got %q after %d calls", got, calls.Load())
	}
}

func TestGivesUpAfterBudget(t *testing.T) {
	var calls atomic.Int32
	gen := testGuard(2).Generator(clients.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		calls.Add(1)
		return "", errors.New("boom")
	}))

	if _, err := gen.Generate(context.Background(), "p"); err == nil || err.Error() != "boom" {
		t.Errorf("err = %v, want last error", err)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}

func TestDoesNotRetryUnrecoverable(t *testing.T) {
	var calls atomic.Int32
	tr := testGuard(5).Transcriber(clients.TranscriberFunc(func(ctx context.Context, path string) (string, error) {
		calls.Add(1)
		return "", retry.Unrecoverable(errors.New("400 bad request"))
	}))

	if _, err := tr.Transcribe(context.Background(), "a.wav"); err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	_, err := testGuard(3).Do(ctx, "generate", func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "x", nil
	})
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if calls.Load() != 0 {
		t.Errorf("calls = %d, want 0", calls.Load())
	}
}

func TestAppliesTimeout(t *testing.T) {
	g := New(Config{RPS: 1000, Burst: 1, Timeout: 10 * time.Millisecond})
	_, err := g.Do(context.Background(), "generate", func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
}
