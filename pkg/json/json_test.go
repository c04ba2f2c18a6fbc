package json

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseJSON(t *testing.T) {
	var got struct {
		Audio string `json:"audio"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"audio":"https://x/a.mp3"}`))
	if err := ParseJSON(r, &got); err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if got.Audio != "https://x/a.mp3" {
		t.Errorf("Audio = %q", got.Audio)
	}

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"audio":`))
	if err := ParseJSON(r, &got); err == nil {
		t.Error("expected error for truncated body")
	}
}

func TestWriteStatusAndError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteStatus(rec, http.StatusAccepted, map[string]any{"message": "queued"})
	if rec.Code != http.StatusAccepted {
		t.Errorf("Code = %d", rec.Code)
	}
	var body map[string]any
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["status"] != float64(http.StatusAccepted) || body["message"] != "queued" {
		t.Errorf("body = %v", body)
	}

	rec = httptest.NewRecorder()
	WriteError(rec, http.StatusNotFound, errors.New("Meeting with ID 3 not found"))
	body = nil
	json.Unmarshal(rec.Body.Bytes(), &body)
	if rec.Code != http.StatusNotFound || body["errors"] != "Meeting with ID 3 not found" || body["status"] != float64(404) {
		t.Errorf("Code = %d, body = %v", rec.Code, body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}
