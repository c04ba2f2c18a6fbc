package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avast/retry-go/v4"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{APIKey: "test", BaseURL: srv.URL + "/v1/", Model: "gpt-test"})
}

func TestGenerate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-test",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"[\"Q1?\"]"}}]}`))
	})

	got, err := c.Generate(context.Background(), "suggest")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != `["Q1?"]` {
		t.Errorf("Generate() = %q", got)
	}
}

func TestGenerateClientErrorIsUnrecoverable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"bad model","type":"invalid_request_error"}}`))
	})

	_, err := c.Generate(context.Background(), "p")
	if err == nil {
		t.Fatal("expected error")
	}
	if retry.IsRecoverable(err) {
		t.Errorf("400 should not be retried: %v", err)
	}
}

func TestTranscribe(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/audio/transcriptions") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":" hello there "}`))
	})

	path := filepath.Join(t.TempDir(), "a.wav")
	if err := os.WriteFile(path, []byte("RIFF"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := c.Transcribe(context.Background(), path)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if got != "hello there" {
		t.Errorf("Transcribe() = %q", got)
	}

	if _, err := c.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.wav")); retry.IsRecoverable(err) {
		t.Errorf("missing file should not be retried: %v", err)
	}
}
