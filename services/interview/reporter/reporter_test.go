package reporter

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/xilidan/interview/pkg/logger"
)

type runnerFunc func(ctx context.Context, meetingID int64, audioURL string) error

func (f runnerFunc) GenerateReport(ctx context.Context, meetingID int64, audioURL string) error {
	return f(ctx, meetingID, audioURL)
}

func waitFor(t *testing.T, r *Reporter, meetingID int64, want State) *Job {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		job, err := r.Status(meetingID)
		if err == nil && job.State == want {
			return job
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("job for meeting %d never reached %s", meetingID, want)
	return nil
}

func TestSubmitRunsDetachedFromCaller(t *testing.T) {
	var gotAudio atomic.Value
	r := New(runnerFunc(func(ctx context.Context, id int64, audio string) error {
		gotAudio.Store(audio)
		return ctx.Err()
	}), Config{}, logger.Discard())

	job, err := r.Submit(1, "https://cdn.example.com/a.mp3")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if job.ID == "" || job.State != StateRunning {
		t.Errorf("job = %+v", job)
	}

	done := waitFor(t, r, 1, StateSucceeded)
	if done.FinishedAt == nil || done.ID != job.ID {
		t.Errorf("finished job = %+v", done)
	}
	if gotAudio.Load() != "https://cdn.example.com/a.mp3" {
		t.Errorf("audio = %v", gotAudio.Load())
	}
}

func TestRejectsConcurrentJobForSameMeeting(t *testing.T) {
	release := make(chan struct{})
	r := New(runnerFunc(func(ctx context.Context, id int64, audio string) error {
		<-release
		return nil
	}), Config{}, logger.Discard())

	if _, err := r.Submit(7, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Submit(7, ""); !errors.Is(err, ErrJobRunning) {
		t.Errorf("err = %v, want ErrJobRunning", err)
	}
	if _, err := r.Submit(8, ""); err != nil {
		t.Errorf("other meeting rejected: %v", err)
	}

	close(release)
	waitFor(t, r, 7, StateSucceeded)

	if _, err := r.Submit(7, ""); err != nil {
		t.Errorf("resubmit after completion: %v", err)
	}
	if err := r.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestFailureAndPanicAreRecorded(t *testing.T) {
	r := New(runnerFunc(func(ctx context.Context, id int64, audio string) error {
		if id == 2 {
			panic("boom")
		}
		return errors.New("No transcript provided")
	}), Config{}, logger.Discard())

	r.Submit(1, "")
	r.Submit(2, "")

	if job := waitFor(t, r, 1, StateFailed); job.Error != "No transcript provided" {
		t.Errorf("error = %q", job.Error)
	}
	if job := waitFor(t, r, 2, StateFailed); job.Error == "" {
		t.Error("panic not recorded")
	}
}

func TestStatusUnknownMeeting(t *testing.T) {
	r := New(runnerFunc(func(context.Context, int64, string) error { return nil }), Config{}, logger.Discard())
	if _, err := r.Status(3); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("err = %v, want ErrJobNotFound", err)
	}
}

func TestRetentionEvictsFinishedJobs(t *testing.T) {
	r := New(runnerFunc(func(context.Context, int64, string) error { return nil }), Config{Retention: 20 * time.Millisecond}, logger.Discard())
	r.Submit(4, "")
	waitFor(t, r, 4, StateSucceeded)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := r.Status(4); errors.Is(err, ErrJobNotFound) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Error("finished job was not evicted")
}

func TestShutdownCancelsOnDeadline(t *testing.T) {
	r := New(runnerFunc(func(ctx context.Context, id int64, audio string) error {
		<-ctx.Done()
		return ctx.Err()
	}), Config{}, logger.Discard())
	r.Submit(5, "")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := r.Shutdown(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Shutdown() err = %v", err)
	}
	if _, err := r.Submit(6, ""); !errors.Is(err, ErrClosed) {
		t.Errorf("Submit after shutdown err = %v", err)
	}

	job, _ := r.Status(5)
	if job.State != StateFailed {
		t.Errorf("state = %s", job.State)
	}
}

func TestJobFinishingAfterShutdownArmsNoEviction(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	r := New(runnerFunc(func(context.Context, int64, string) error {
		close(started)
		<-release
		return nil
	}), Config{Retention: time.Millisecond}, logger.Discard())

	r.Submit(9, "")
	<-started

	shutdown := make(chan error, 1)
	go func() { shutdown <- r.Shutdown(context.Background()) }()

	// Let Shutdown mark the reporter closed before the job finishes.
	deadline := time.Now().Add(2 * time.Second)
	for {
		r.mu.RLock()
		closed := r.closed
		r.mu.RUnlock()
		if closed {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("Shutdown never closed the reporter")
		}
		time.Sleep(time.Millisecond)
	}
	close(release)

	if err := <-shutdown; err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	r.mu.RLock()
	evict := r.jobs[9].evict
	r.mu.RUnlock()
	if evict != nil {
		t.Error("finished job armed an evict timer after shutdown")
	}

	time.Sleep(20 * time.Millisecond)
	if job, err := r.Status(9); err != nil || job.State != StateSucceeded {
		t.Errorf("Status() = %+v, %v", job, err)
	}
}
