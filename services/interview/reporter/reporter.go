package reporter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/xilidan/interview/pkg/gen"
	"github.com/xilidan/interview/pkg/logger"
)

var (
	ErrJobRunning  = errors.New("report generation already running")
	ErrJobNotFound = errors.New("no report job for meeting")
	ErrClosed      = errors.New("reporter is shutting down")
)

type State string

const (
	StateRunning   State = "running"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Runner produces the report for one meeting.
type Runner interface {
	GenerateReport(ctx context.Context, meetingID int64, audioURL string) error
}

type Config struct {
	// Timeout bounds a single job. Zero means no limit.
	Timeout time.Duration
	// Retention is how long a finished job stays queryable.
	Retention time.Duration
}

type Job struct {
	ID         string     `json:"job_id"`
	MeetingID  int64      `json:"meeting_id"`
	AudioURL   string     `json:"audio,omitempty"`
	State      State      `json:"state"`
	Error      string     `json:"error,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`

	evict *time.Timer
}

// Reporter runs report generation in the background, one job per meeting
// at a time. Jobs run on a context detached from the submitting request.
type Reporter struct {
	runner Runner
	cfg    Config
	log    *slog.Logger
	ids    gen.UUIDGenerator

	jobs   map[int64]*Job
	mu     sync.RWMutex
	wg     sync.WaitGroup
	closed bool

	ctx    context.Context
	cancel context.CancelFunc
}

func New(runner Runner, cfg Config, log *slog.Logger) *Reporter {
	if cfg.Retention <= 0 {
		cfg.Retention = time.Hour
	}
	ctx, cancel := context.WithCancel(logger.WithContext(context.Background(), log))

	log.Debug("creating report runner", slog.Duration("timeout", cfg.Timeout), slog.Duration("retention", cfg.Retention))
	return &Reporter{
		runner: runner,
		cfg:    cfg,
		log:    log,
		ids:    gen.UUID(),
		jobs:   make(map[int64]*Job),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (r *Reporter) Submit(meetingID int64, audioURL string) (*Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrClosed
	}
	if prev, ok := r.jobs[meetingID]; ok {
		if prev.State == StateRunning {
			r.log.Warn("report already running", slog.Int64("meeting_id", meetingID), slog.String("job_id", prev.ID))
			return nil, fmt.Errorf("meeting %d: %w", meetingID, ErrJobRunning)
		}
		if prev.evict != nil {
			prev.evict.Stop()
		}
	}

	job := &Job{
		ID:        r.ids.NextString(),
		MeetingID: meetingID,
		AudioURL:  audioURL,
		State:     StateRunning,
		StartedAt: time.Now(),
	}
	r.jobs[meetingID] = job

	r.wg.Add(1)
	go r.run(job)

	r.log.Info("report generation initiated",
		slog.Int64("meeting_id", meetingID),
		slog.String("job_id", job.ID),
		slog.Int("active_jobs", r.activeLocked()))

	snapshot := *job
	return &snapshot, nil
}

func (r *Reporter) run(job *Job) {
	defer r.wg.Done()

	ctx := logger.WithContext(r.ctx, logger.WithFields(r.log, map[string]any{
		"meeting_id": job.MeetingID,
		"job_id":     job.ID,
	}))
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	err := r.runSafely(ctx, job)

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	job.FinishedAt = &now
	if err != nil {
		job.State = StateFailed
		job.Error = err.Error()
		logger.ErrorErr(ctx, "report generation failed", err, slog.Duration("took", now.Sub(job.StartedAt)))
	} else {
		job.State = StateSucceeded
		logger.Info(ctx, "report generation completed", slog.Duration("took", now.Sub(job.StartedAt)))
	}

	// Shutdown stopped the evict timers; jobs finishing later stay put.
	if r.closed {
		return
	}
	job.evict = time.AfterFunc(r.cfg.Retention, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.jobs[job.MeetingID] == job {
			delete(r.jobs, job.MeetingID)
		}
	})
}

func (r *Reporter) runSafely(ctx context.Context, job *Job) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("report generation panicked: %v", p)
		}
	}()
	return r.runner.GenerateReport(ctx, job.MeetingID, job.AudioURL)
}

// Status returns a snapshot of the latest job for meetingID.
func (r *Reporter) Status(meetingID int64) (*Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[meetingID]
	if !ok {
		return nil, fmt.Errorf("meeting %d: %w", meetingID, ErrJobNotFound)
	}
	snapshot := *job
	snapshot.evict = nil
	return &snapshot, nil
}

func (r *Reporter) activeLocked() int {
	n := 0
	for _, j := range r.jobs {
		if j.State == StateRunning {
			n++
		}
	}
	return n
}

// Shutdown stops accepting jobs and waits for running ones. When ctx ends
// first, running jobs are cancelled and ctx.Err is returned.
func (r *Reporter) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	r.closed = true
	active := r.activeLocked()
	for _, j := range r.jobs {
		if j.evict != nil {
			j.evict.Stop()
		}
	}
	r.mu.Unlock()

	r.log.Info("waiting for report jobs", slog.Int("active_jobs", active))

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.cancel()
		return nil
	case <-ctx.Done():
		r.cancel()
		<-done
		return ctx.Err()
	}
}
