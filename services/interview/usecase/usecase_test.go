package usecase

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/xilidan/interview/services/interview/audio"
	"github.com/xilidan/interview/services/interview/clients/canned"
	"github.com/xilidan/interview/services/interview/entity"
	"github.com/xilidan/interview/services/interview/prompts"
	"github.com/xilidan/interview/services/interview/storage"
)

type passthrough struct{}

func (passthrough) ToWAV(_ context.Context, path string) (string, error) {
	return path, nil
}

type env struct {
	uc      Usecase
	store   storage.Storage
	gen     *canned.Generator
	audioTS *httptest.Server
}

func newEnv(t *testing.T, gen *canned.Generator, tr canned.Transcriber) *env {
	t.Helper()

	store, err := storage.Open(context.Background(), "sqlite", ":memory:")
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/missing.wav") {
			http.NotFound(w, r)
			return
		}
		w.Write(toneWAV())
	}))
	t.Cleanup(ts.Close)

	uc := New(Deps{
		Storage:     store,
		Generator:   gen,
		Transcriber: tr,
		Prompts:     prompts.MustLoad(),
		Audio: audio.NewDownloader(audio.DownloaderConfig{
			MaxBytes:   1 << 20,
			TempDir:    t.TempDir(),
			Attempts:   1,
			RetryDelay: time.Millisecond,
		}),
		Converter: passthrough{},
	})
	return &env{uc: uc, store: store, gen: gen, audioTS: ts}
}

func offlineEnv(t *testing.T) *env {
	gen, tr := canned.Offline()
	return newEnv(t, gen, tr)
}

func toneWAV() []byte {
	var data bytes.Buffer
	for i := 0; i < audio.SampleRate/2; i++ {
		s := 0.4 * math.Sin(2*math.Pi*200*float64(i)/audio.SampleRate)
		binary.Write(&data, binary.LittleEndian, int16(s*32767))
	}

	var b bytes.Buffer
	b.WriteString("RIFF")
	binary.Write(&b, binary.LittleEndian, uint32(36+data.Len()))
	b.WriteString("WAVEfmt ")
	for _, v := range []any{uint32(16), uint16(1), uint16(1), uint32(audio.SampleRate), uint32(audio.SampleRate * 2), uint16(2), uint16(16)} {
		binary.Write(&b, binary.LittleEndian, v)
	}
	b.WriteString("data")
	binary.Write(&b, binary.LittleEndian, uint32(data.Len()))
	b.Write(data.Bytes())
	return b.Bytes()
}

func validRequest() *entity.CreateMeetingRequest {
	return &entity.CreateMeetingRequest{
		Date:            "2025-05-20",
		Time:            "14:30",
		Name:            "Grace Hopper",
		InterviewerName: "Alan Turing",
		MeetLink:        "https://meet.example.com/xyz",
		Role:            "Backend Engineer",
		JobDesc:         "Design and run Go services",
		Experience:      "4",
		Skills:          "Go, PostgreSQL",
	}
}

func TestCreateMeeting(t *testing.T) {
	e := offlineEnv(t)
	ctx := context.Background()

	m, err := e.uc.CreateMeeting(ctx, validRequest())
	if err != nil {
		t.Fatalf("CreateMeeting() error = %v", err)
	}
	if m.Time != "14:30:00" || m.Status != entity.StatusScheduled {
		t.Errorf("time %q status %q", m.Time, m.Status)
	}

	var questions []string
	if err := json.Unmarshal([]byte(m.ExpectedQuestionsText()), &questions); err != nil {
		t.Fatalf("expected questions are not a JSON array: %v", err)
	}
	if len(questions) != 3 {
		t.Errorf("questions = %v", questions)
	}

	sent := e.gen.Prompts()
	if len(sent) != 1 || !strings.Contains(sent[0], "experience: 4, skills: Go, PostgreSQL") {
		t.Errorf("unexpected prompt %q", sent)
	}
}

func TestCreateMeetingGenerationFailureStillCreates(t *testing.T) {
	e := newEnv(t, canned.NewGenerator("").Fail(errors.New("quota exceeded")), canned.Transcriber{})

	m, err := e.uc.CreateMeeting(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("CreateMeeting() error = %v", err)
	}
	if m.ExpectedQuestions != nil {
		t.Errorf("expected no questions, got %q", *m.ExpectedQuestions)
	}
}

func TestCreateMeetingValidation(t *testing.T) {
	e := offlineEnv(t)

	req := validRequest()
	req.Date = "20/05/2025"
	req.Time = "half past two"
	req.Name = " "

	_, err := e.uc.CreateMeeting(context.Background(), req)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	for _, want := range []string{"name is required", "date", "time"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
	if len(e.gen.Prompts()) != 0 {
		t.Error("invalid request must not reach the generator")
	}
}

func TestListAndStatus(t *testing.T) {
	e := offlineEnv(t)
	ctx := context.Background()

	m, _ := e.uc.CreateMeeting(ctx, validRequest())
	items, err := e.uc.ListMeetings(ctx)
	if err != nil || len(items) != 1 || items[0].ID != m.ID {
		t.Fatalf("ListMeetings() = %v, %v", items, err)
	}

	updated, err := e.uc.UpdateStatus(ctx, m.ID, "Completed")
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.Status != entity.StatusCompleted {
		t.Errorf("status = %q", updated.Status)
	}

	if _, err := e.uc.UpdateStatus(ctx, m.ID, "Done"); !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
	if _, err := e.uc.UpdateStatus(ctx, 404, "Completed"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGetAnalysisEmpty(t *testing.T) {
	e := offlineEnv(t)
	ctx := context.Background()
	m, _ := e.uc.CreateMeeting(ctx, validRequest())

	if _, err := e.uc.GetAnalysis(ctx, m.ID); !errors.Is(err, ErrNoAnalysis) {
		t.Errorf("err = %v, want ErrNoAnalysis", err)
	}
	if _, err := e.uc.GetAnalysis(ctx, 12345); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSuggest(t *testing.T) {
	e := offlineEnv(t)
	ctx := context.Background()
	m, _ := e.uc.CreateMeeting(ctx, validRequest())

	res, err := e.uc.Suggest(ctx, &entity.SuggestionRequest{ID: m.ID, Transcript: "Q: channels? A: typed pipes."})
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}

	var suggested []string
	if err := json.Unmarshal([]byte(res.ExpectedQuestions), &suggested); err != nil || len(suggested) != 3 {
		t.Fatalf("suggestions = %q, %v", res.ExpectedQuestions, err)
	}

	stored, _ := e.uc.GetMeeting(ctx, m.ID)
	if stored.TranscriptText() != "Q: channels? A: typed pipes." {
		t.Errorf("transcript = %q", stored.TranscriptText())
	}
	var all []string
	if err := json.Unmarshal([]byte(stored.ExpectedQuestionsText()), &all); err != nil || len(all) != 6 {
		t.Errorf("merged questions = %q, %v", stored.ExpectedQuestionsText(), err)
	}

	// The stored transcript is reused when the request carries none.
	if _, err := e.uc.Suggest(ctx, &entity.SuggestionRequest{ID: m.ID}); err != nil {
		t.Fatalf("Suggest() without transcript error = %v", err)
	}
	last := e.gen.Prompts()[len(e.gen.Prompts())-1]
	if !strings.Contains(last, "typed pipes") || !strings.Contains(last, "Backend Engineer") {
		t.Errorf("prompt did not use stored meeting data:\n%s", last)
	}
}

func TestSuggestErrors(t *testing.T) {
	e := offlineEnv(t)
	ctx := context.Background()
	m, _ := e.uc.CreateMeeting(ctx, validRequest())

	if _, err := e.uc.Suggest(ctx, &entity.SuggestionRequest{ID: m.ID, Transcript: "  "}); !errors.Is(err, ErrNoTranscript) {
		t.Errorf("err = %v, want ErrNoTranscript", err)
	}
	if _, err := e.uc.Suggest(ctx, &entity.SuggestionRequest{ID: 77, Transcript: "x"}); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if _, err := e.uc.Suggest(ctx, &entity.SuggestionRequest{}); !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestMergeQuestions(t *testing.T) {
	tests := []struct {
		name     string
		previous string
		new      []string
		want     string
	}{
		{name: "empty", previous: "", new: []string{"a"}, want: `["a"]`},
		{name: "json array", previous: `["x","y"]`, new: []string{"a"}, want: `["x","y","a"]`},
		{name: "free text", previous: "1. Why Go?", new: []string{"a"}, want: "1. Why Go?\n\n--- Suggested questions ---\n[\"a\"]"},
		{name: "no suggestions", previous: `["x"]`, new: nil, want: `["x"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mergeQuestions(tt.previous, tt.new)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("mergeQuestions() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseVoiceReply(t *testing.T) {
	got, err := parseVoiceReply(canned.VoiceReply)
	if err != nil {
		t.Fatalf("parseVoiceReply() error = %v", err)
	}
	want := entity.VoiceAnalysis{Clarity: "8", Confidence: "6", SpeechPatterns: "Steady pace with occasional long pauses"}
	if *got != want {
		t.Errorf("got %+v, want %+v", *got, want)
	}

	for _, bad := range []string{
		"no json here",
		`{"clarity": {"score": 8}, "confidence": {"score": 6}}`,
		`{"clarity": 8, "confidence": {"score": 6}, "speech_patterns": "x"}`,
	} {
		if _, err := parseVoiceReply(bad); !errors.Is(err, ErrVoiceResult) {
			t.Errorf("parseVoiceReply(%q) err = %v, want ErrVoiceResult", bad, err)
		}
	}
}

func TestAnalyzeVoice(t *testing.T) {
	e := offlineEnv(t)

	got, err := e.uc.AnalyzeVoice(context.Background(), e.audioTS.URL+"/rec/interview.wav")
	if err != nil {
		t.Fatalf("AnalyzeVoice() error = %v", err)
	}
	if got.Clarity != "8" || got.Confidence != "6" {
		t.Errorf("got %+v", got)
	}

	last := e.gen.Prompts()[len(e.gen.Prompts())-1]
	if !strings.Contains(last, canned.TranscriptText) || !strings.Contains(last, "Pitch Mean: 200.00") {
		t.Errorf("voice prompt missing transcript or pitch:\n%s", last)
	}
}

func TestGenerateReport(t *testing.T) {
	e := offlineEnv(t)
	ctx := context.Background()
	m, _ := e.uc.CreateMeeting(ctx, validRequest())
	e.store.UpdateTranscript(ctx, m.ID, "Q: What is a goroutine? A: A lightweight thread.")

	audioURL := e.audioTS.URL + "/rec/interview.wav"
	if err := e.uc.GenerateReport(ctx, m.ID, audioURL); err != nil {
		t.Fatalf("GenerateReport() error = %v", err)
	}

	got, _ := e.uc.GetMeeting(ctx, m.ID)
	if !got.IsReviewReady {
		t.Error("review should be ready")
	}
	if got.Audio == nil || *got.Audio != audioURL {
		t.Errorf("audio = %v", got.Audio)
	}
	checks := []struct {
		name string
		got  *string
		want string
	}{
		{"clarity", got.Clarity, "8"},
		{"confidence", got.Confidence, "6"},
		{"ques_count", got.QuesCount, "6"},
		{"correct_ans_count", got.CorrectAnsCount, "4"},
		{"wrong_ans_count", got.WrongAnsCount, "2"},
		{"tech_knowledge", got.TechKnowledge, "7"},
		{"speech_patterns", got.SpeechPatterns, "Steady pace with occasional long pauses"},
	}
	for _, c := range checks {
		if c.got == nil || *c.got != c.want {
			t.Errorf("%s = %v, want %q", c.name, c.got, c.want)
		}
	}
	if got.WhatWentWell == nil || !strings.HasPrefix(*got.WhatWentWell, "Explained concurrency") {
		t.Errorf("what went well = %v", got.WhatWentWell)
	}
}

func TestGenerateReportWithoutVoiceUsesReportScores(t *testing.T) {
	e := offlineEnv(t)
	ctx := context.Background()
	m, _ := e.uc.CreateMeeting(ctx, validRequest())
	e.store.UpdateTranscript(ctx, m.ID, "Q: hi A: hello")

	if err := e.uc.GenerateReport(ctx, m.ID, e.audioTS.URL+"/missing.wav"); err != nil {
		t.Fatalf("GenerateReport() error = %v", err)
	}

	got, _ := e.uc.GetMeeting(ctx, m.ID)
	if got.Clarity == nil || *got.Clarity != "8" || got.Confidence == nil || *got.Confidence != "7" {
		t.Errorf("clarity %v confidence %v", got.Clarity, got.Confidence)
	}
	if got.SpeechPatterns != nil {
		t.Errorf("speech patterns = %q", *got.SpeechPatterns)
	}
}

func TestGenerateReportWithoutTranscript(t *testing.T) {
	e := offlineEnv(t)
	ctx := context.Background()
	m, _ := e.uc.CreateMeeting(ctx, validRequest())

	err := e.uc.GenerateReport(ctx, m.ID, e.audioTS.URL+"/rec/interview.wav")
	if !errors.Is(err, ErrNoTranscript) {
		t.Fatalf("err = %v, want ErrNoTranscript", err)
	}

	got, _ := e.uc.GetMeeting(ctx, m.ID)
	if got.IsReviewReady {
		t.Error("review must not be ready without a report")
	}
	if got.Clarity == nil || *got.Clarity != "8" {
		t.Errorf("voice clarity should be stored, got %v", got.Clarity)
	}

	if err := e.uc.GenerateReport(ctx, 999, ""); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
