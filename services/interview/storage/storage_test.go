package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/xilidan/interview/services/interview/entity"
)

func newTestStorage(t *testing.T) Storage {
	t.Helper()
	s, err := Open(context.Background(), "sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleMeeting() *entity.Meeting {
	return &entity.Meeting{
		Date:              "2025-03-14",
		Time:              "10:30:00",
		Name:              "Ada Lovelace",
		InterviewerName:   "Charles Babbage",
		MeetLink:          "https://meet.example.com/abc",
		Role:              "Backend Engineer",
		JobDesc:           "Build services in Go",
		Experience:        "5",
		Skills:            "Go, SQL",
		ExpectedQuestions: entity.Ptr(`["What is a goroutine?"]`),
	}
}

func TestCreateAndGetMeeting(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	created, err := s.CreateMeeting(ctx, sampleMeeting())
	if err != nil {
		t.Fatalf("CreateMeeting() error = %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected generated id")
	}
	if created.Status != entity.StatusScheduled || created.IsReviewReady {
		t.Errorf("status = %q, review ready = %v", created.Status, created.IsReviewReady)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	got, err := s.GetMeeting(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetMeeting() error = %v", err)
	}
	if got.Name != "Ada Lovelace" || got.Experience != "5" || got.ExpectedQuestionsText() != `["What is a goroutine?"]` {
		t.Errorf("got %+v", got)
	}
	if got.Transcript != nil || got.Confidence != nil {
		t.Error("optional fields should be nil")
	}
}

func TestGetMeetingNotFound(t *testing.T) {
	s := newTestStorage(t)
	if _, err := s.GetMeeting(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if err := s.UpdateTranscript(context.Background(), 99, "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateTranscript err = %v, want ErrNotFound", err)
	}
}

func TestListMeetings(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	list, err := s.ListMeetings(ctx)
	if err != nil || len(list) != 0 {
		t.Fatalf("ListMeetings() = %v, %v", list, err)
	}

	for i := 0; i < 3; i++ {
		if _, err := s.CreateMeeting(ctx, sampleMeeting()); err != nil {
			t.Fatal(err)
		}
	}
	list, err = s.ListMeetings(ctx)
	if err != nil {
		t.Fatalf("ListMeetings() error = %v", err)
	}
	if len(list) != 3 || list[0].ID >= list[2].ID {
		t.Errorf("unexpected list: %d items", len(list))
	}
}

func TestUpdates(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	m, _ := s.CreateMeeting(ctx, sampleMeeting())

	if err := s.UpdateStatus(ctx, m.ID, entity.StatusInProgress); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateTranscript(ctx, m.ID, "Q: hi A: hello"); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateExpectedQuestions(ctx, m.ID, `["a","b"]`); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateAudio(ctx, m.ID, "https://cdn.example.com/a.mp3"); err != nil {
		t.Fatal(err)
	}

	got, _ := s.GetMeeting(ctx, m.ID)
	if got.Status != entity.StatusInProgress {
		t.Errorf("status = %q", got.Status)
	}
	if got.TranscriptText() != "Q: hi A: hello" || got.ExpectedQuestionsText() != `["a","b"]` {
		t.Errorf("got transcript %q questions %q", got.TranscriptText(), got.ExpectedQuestionsText())
	}
	if got.Audio == nil || *got.Audio != "https://cdn.example.com/a.mp3" {
		t.Errorf("audio = %v", got.Audio)
	}
}

func TestStatusConstraint(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	m, _ := s.CreateMeeting(ctx, sampleMeeting())

	if err := s.UpdateStatus(ctx, m.ID, entity.MeetingStatus("Postponed")); err == nil {
		t.Error("expected enum validation error")
	}
}

func TestSaveReviewKeepsExistingValues(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	m, _ := s.CreateMeeting(ctx, sampleMeeting())

	first := entity.Analysis{
		Clarity:        entity.Ptr("8 - clear articulation"),
		Confidence:     entity.Ptr("7 - steady"),
		SpeechPatterns: entity.Ptr("even pace"),
	}
	if err := s.SaveReview(ctx, m.ID, first, false); err != nil {
		t.Fatal(err)
	}

	got, _ := s.GetMeeting(ctx, m.ID)
	if got.IsReviewReady {
		t.Error("voice-only review must not be marked ready")
	}

	second := entity.Analysis{
		OverallFit: entity.Ptr("Strong fit"),
		QuesCount:  entity.Ptr("10"),
	}
	if err := s.SaveReview(ctx, m.ID, second, true); err != nil {
		t.Fatal(err)
	}

	got, _ = s.GetMeeting(ctx, m.ID)
	if !got.IsReviewReady {
		t.Error("expected review ready")
	}
	if got.Clarity == nil || *got.Clarity != "8 - clear articulation" {
		t.Errorf("clarity = %v", got.Clarity)
	}
	if got.OverallFit == nil || *got.OverallFit != "Strong fit" {
		t.Errorf("overall fit = %v", got.OverallFit)
	}
	if got.AIFeedback != nil {
		t.Errorf("ai feedback = %v", *got.AIFeedback)
	}
}

func TestSqliteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{":memory:", "file::memory:?_pragma=foreign_keys(1)"},
		{"", "file::memory:?_pragma=foreign_keys(1)"},
		{"interview.db", "file:interview.db?_pragma=foreign_keys(1)"},
		{"file:interview.db?cache=shared", "file:interview.db?cache=shared&_pragma=foreign_keys(1)"},
		{"file:x.db?_pragma=foreign_keys(1)", "file:x.db?_pragma=foreign_keys(1)"},
	}
	for _, tt := range tests {
		if got := sqliteDSN(tt.in); got != tt.want {
			t.Errorf("sqliteDSN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCreateMeetingDefaultsStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	m := sampleMeeting()
	m.Status = ""
	created, err := s.CreateMeeting(ctx, m)
	if err != nil {
		t.Fatal(err)
	}
	if created.Status != entity.StatusScheduled {
		t.Errorf("status = %q", created.Status)
	}
	if created.UpdatedAt.Before(created.CreatedAt) {
		t.Errorf("updated_at %v before created_at %v", created.UpdatedAt, created.CreatedAt)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), "mysql", ""); err == nil {
		t.Error("expected error")
	}
}
