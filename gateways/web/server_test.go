package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/xilidan/interview/gateways/web/handler"
	"github.com/xilidan/interview/pkg/jwt"
	"github.com/xilidan/interview/pkg/logger"
	"github.com/xilidan/interview/services/interview/audio"
	"github.com/xilidan/interview/services/interview/clients/canned"
	"github.com/xilidan/interview/services/interview/prompts"
	"github.com/xilidan/interview/services/interview/reporter"
	"github.com/xilidan/interview/services/interview/storage"
	"github.com/xilidan/interview/services/interview/usecase"
)

type fakeReports struct {
	mu        sync.Mutex
	submitted []int64
	err       error
}

func (f *fakeReports) Submit(meetingID int64, audioURL string) (*reporter.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.submitted = append(f.submitted, meetingID)
	return &reporter.Job{ID: "job-1", MeetingID: meetingID, AudioURL: audioURL, State: reporter.StateRunning, StartedAt: time.Now()}, nil
}

func (f *fakeReports) Status(meetingID int64) (*reporter.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range f.submitted {
		if id == meetingID {
			return &reporter.Job{ID: "job-1", MeetingID: meetingID, State: reporter.StateRunning}, nil
		}
	}
	return nil, reporter.ErrJobNotFound
}

func newTestRouter(t *testing.T, secret string, reports *fakeReports) http.Handler {
	t.Helper()

	store, err := storage.Open(context.Background(), "sqlite", ":memory:")
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	gen, tr := canned.Offline()
	uc := usecase.New(usecase.Deps{
		Storage:     store,
		Generator:   gen,
		Transcriber: tr,
		Prompts:     prompts.MustLoad(),
		Audio:       audio.NewDownloader(audio.DownloaderConfig{TempDir: t.TempDir()}),
		Converter:   audio.NewConverter("ffmpeg", t.TempDir()),
	})

	log := logger.Discard()
	return NewRouter(handler.NewHandler(uc, reports, log), secret, log)
}

type response struct {
	code int
	body map[string]any
}

func do(t *testing.T, h http.Handler, method, path, body string, header ...string) response {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	res := response{code: rec.Code}
	if err := json.Unmarshal(rec.Body.Bytes(), &res.body); err != nil {
		t.Fatalf("%s %s: body %q is not JSON: %v", method, path, rec.Body.String(), err)
	}
	return res
}

const meetingBody = `{
	"date": "2025-05-20",
	"time": "09:15",
	"name": "Grace Hopper",
	"interviewer_name": "Alan Turing",
	"meet_link": "https://meet.example.com/abc",
	"role": "Backend Engineer",
	"job_desc": "Build Go services",
	"experience": 4,
	"skills": "Go, SQL"
}`

func createMeeting(t *testing.T, h http.Handler) int64 {
	t.Helper()
	res := do(t, h, http.MethodPost, "/meetings", meetingBody)
	if res.code != http.StatusCreated {
		t.Fatalf("create meeting: status %d body %v", res.code, res.body)
	}
	return int64(res.body["id"].(float64))
}

func TestWelcomeAndHealth(t *testing.T) {
	h := newTestRouter(t, "", &fakeReports{})

	res := do(t, h, http.MethodGet, "/", "")
	if res.code != http.StatusOK || res.body["message"] != "Welcome to the Interview Management API" {
		t.Errorf("welcome: %d %v", res.code, res.body)
	}

	res = do(t, h, http.MethodGet, "/health", "")
	if res.code != http.StatusOK || res.body["healthy"] != true {
		t.Errorf("health: %d %v", res.code, res.body)
	}
}

func TestMeetingRoutes(t *testing.T) {
	h := newTestRouter(t, "", &fakeReports{})
	id := createMeeting(t, h)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		code   int
		check  func(t *testing.T, body map[string]any)
	}{
		{
			name: "list", method: http.MethodGet, path: "/meetings", code: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				if got := len(body["meetings"].([]any)); got != 1 {
					t.Errorf("meetings = %d", got)
				}
			},
		},
		{
			name: "detail", method: http.MethodGet, path: "/meeting/1", code: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				m := body["meeting"].(map[string]any)
				if m["time"] != "09:15:00" || m["status"] != "Scheduled" {
					t.Errorf("meeting = %v", m)
				}
			},
		},
		{
			name: "missing meeting", method: http.MethodGet, path: "/meeting/99", code: http.StatusNotFound,
			check: func(t *testing.T, body map[string]any) {
				if body["errors"] != "Meeting with ID 99 not found" {
					t.Errorf("errors = %v", body["errors"])
				}
			},
		},
		{name: "bad id", method: http.MethodGet, path: "/meeting/abc", code: http.StatusBadRequest},
		{
			name: "no analysis yet", method: http.MethodGet, path: "/meeting/1/analysis", code: http.StatusNotFound,
			check: func(t *testing.T, body map[string]any) {
				if body["errors"] != "Analysis data not available for meeting with ID 1" {
					t.Errorf("errors = %v", body["errors"])
				}
			},
		},
		{
			name: "update status", method: http.MethodPatch, path: "/meeting/1/status", body: `{"status":"In Progress"}`, code: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				if s := body["meeting"].(map[string]any)["status"]; s != "In Progress" {
					t.Errorf("status = %v", s)
				}
			},
		},
		{name: "unknown status", method: http.MethodPatch, path: "/meeting/1/status", body: `{"status":"Paused"}`, code: http.StatusUnprocessableEntity},
		{name: "invalid create", method: http.MethodPost, path: "/meetings", body: `{"name":""}`, code: http.StatusUnprocessableEntity},
		{name: "malformed body", method: http.MethodPost, path: "/meetings", body: `{`, code: http.StatusUnprocessableEntity},
	}

	if id != 1 {
		t.Fatalf("first meeting id = %d", id)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := do(t, h, tt.method, tt.path, tt.body)
			if res.code != tt.code {
				t.Fatalf("status = %d, want %d (body %v)", res.code, tt.code, res.body)
			}
			if int(res.body["status"].(float64)) != tt.code {
				t.Errorf("body status = %v", res.body["status"])
			}
			if tt.check != nil {
				tt.check(t, res.body)
			}
		})
	}
}

func TestSuggestions(t *testing.T) {
	h := newTestRouter(t, "", &fakeReports{})
	id := createMeeting(t, h)

	res := do(t, h, http.MethodPost, "/suggestions", `{"id":1}`)
	if res.code != http.StatusBadRequest || res.body["errors"] != "No transcript provided" {
		t.Errorf("without transcript: %d %v", res.code, res.body)
	}

	res = do(t, h, http.MethodPost, "/suggestions", `{"id":1,"transcript":"We talked about goroutines."}`)
	if res.code != http.StatusOK {
		t.Fatalf("with transcript: %d %v", res.code, res.body)
	}
	questions, _ := res.body["expected_questions"].(string)
	if !strings.HasPrefix(questions, "[") {
		t.Errorf("expected_questions = %q", questions)
	}

	res = do(t, h, http.MethodGet, "/meeting/1", "")
	m := res.body["meeting"].(map[string]any)
	if m["transcript"] != "We talked about goroutines." {
		t.Errorf("meeting %d transcript = %v", id, m["transcript"])
	}
}

func TestGenerateReport(t *testing.T) {
	reports := &fakeReports{}
	h := newTestRouter(t, "", reports)
	createMeeting(t, h)

	res := do(t, h, http.MethodPost, "/meeting/5/generate-report", `{"audio":"https://cdn.example.com/a.mp3"}`)
	if res.code != http.StatusNotFound {
		t.Errorf("unknown meeting: %d %v", res.code, res.body)
	}

	res = do(t, h, http.MethodGet, "/meeting/1/report-status", "")
	if res.code != http.StatusNotFound {
		t.Errorf("status before submit: %d %v", res.code, res.body)
	}

	res = do(t, h, http.MethodPost, "/meeting/1/generate-report", `{"audio":"https://cdn.example.com/a.mp3"}`)
	if res.code != http.StatusAccepted {
		t.Fatalf("submit: %d %v", res.code, res.body)
	}
	if res.body["message"] != "Report generation initiated for meeting ID 1" || res.body["job_id"] != "job-1" {
		t.Errorf("submit body = %v", res.body)
	}
	if len(reports.submitted) != 1 || reports.submitted[0] != 1 {
		t.Errorf("submitted = %v", reports.submitted)
	}

	res = do(t, h, http.MethodGet, "/meeting/1/report-status", "")
	if res.code != http.StatusOK || res.body["job"].(map[string]any)["state"] != "running" {
		t.Errorf("status after submit: %d %v", res.code, res.body)
	}

	reports.err = reporter.ErrJobRunning
	res = do(t, h, http.MethodPost, "/meeting/1/generate-report", `{"audio":"https://cdn.example.com/a.mp3"}`)
	if res.code != http.StatusConflict {
		t.Errorf("duplicate submit: %d %v", res.code, res.body)
	}
}

func TestAuth(t *testing.T) {
	const secret = "test-secret"
	h := newTestRouter(t, secret, &fakeReports{})

	token, err := jwt.Generate(context.Background(), 7, secret)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	forged, err := jwt.Generate(context.Background(), 7, "other-secret")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	tests := []struct {
		name   string
		path   string
		header []string
		code   int
	}{
		{name: "public welcome", path: "/", code: http.StatusOK},
		{name: "public health", path: "/health", code: http.StatusOK},
		{name: "no token", path: "/meetings", code: http.StatusForbidden},
		{name: "wrong scheme", path: "/meetings", header: []string{"Authorization", "Basic " + token}, code: http.StatusForbidden},
		{name: "forged token", path: "/meetings", header: []string{"Authorization", "Bearer " + forged}, code: http.StatusForbidden},
		{name: "valid token", path: "/meetings", header: []string{"Authorization", "Bearer " + token}, code: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := do(t, h, http.MethodGet, tt.path, "", tt.header...)
			if res.code != tt.code {
				t.Errorf("status = %d, want %d (body %v)", res.code, tt.code, res.body)
			}
		})
	}
}
