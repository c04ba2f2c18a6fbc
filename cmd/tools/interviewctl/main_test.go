package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xilidan/interview/pkg/jwt"
	"github.com/xilidan/interview/services/interview/clients/canned"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExtractReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reply.txt")
	if err := os.WriteFile(path, []byte(canned.ReportReply), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "", "extract", "--report", path)
	if err != nil {
		t.Fatalf("extract error = %v", err)
	}

	var got extractOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output %q: %v", out, err)
	}
	if got.Mode != "sections" || !got.Success || len(got.Missing) != 0 {
		t.Errorf("result = %+v", got)
	}
	if got.Fields["correct_ans_count"] != "4" || got.Fields["wrong_ans_count"] != "2" {
		t.Errorf("answer counts = %q / %q", got.Fields["correct_ans_count"], got.Fields["wrong_ans_count"])
	}
}

func TestExtractFromStdin(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  extractOutput
	}{
		{
			name:  "fenced array",
			stdin: "```json\n[\"a\", \"b\"]\n```",
			args:  []string{"extract", "--mode", "array"},
			want:  extractOutput{Mode: "array", Success: true, Items: []string{"a", "b"}},
		},
		{
			name:  "numbered fallback",
			stdin: "1. first\n2. second",
			args:  []string{"extract", "--mode", "array", "-"},
			want:  extractOutput{Mode: "array", Success: true, FallbackUsed: true, Items: []string{"first", "second"}},
		},
		{
			name:  "custom sections",
			stdin: "SCORE: 9\nNOTES: solid",
			args:  []string{"extract", "--section", "score=SCORE:", "--section", "notes=NOTES:"},
			want:  extractOutput{Mode: "sections", Success: true, Fields: map[string]string{"score": "9", "notes": "solid"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("extract error = %v", err)
			}
			var got extractOutput
			if err := json.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("output %q: %v", out, err)
			}
			if got.Mode != tt.want.Mode || got.Success != tt.want.Success || got.FallbackUsed != tt.want.FallbackUsed {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
			if strings.Join(got.Items, "|") != strings.Join(tt.want.Items, "|") {
				t.Errorf("items = %q, want %q", got.Items, tt.want.Items)
			}
			for k, v := range tt.want.Fields {
				if got.Fields[k] != v {
					t.Errorf("field %s = %q, want %q", k, got.Fields[k], v)
				}
			}
		})
	}
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "sections without labels", args: []string{"extract"}},
		{name: "bad section", args: []string{"extract", "--section", "nolabel"}},
		{name: "unknown mode", args: []string{"extract", "--mode", "xml"}},
		{name: "report and mode", args: []string{"extract", "--report", "--mode", "array"}},
		{name: "missing file", args: []string{"extract", "--report", "/nonexistent/reply.txt"}},
		{name: "bad output", args: []string{"-o", "toml", "extract", "--mode", "array"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, "[]", tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestExtractYAML(t *testing.T) {
	out, err := execute(t, `{"clarity": 8}`, "-o", "yaml", "extract", "--mode", "object")
	if err != nil {
		t.Fatalf("extract error = %v", err)
	}
	if !strings.Contains(out, "mode: object") || !strings.Contains(out, "clarity: 8") {
		t.Errorf("yaml output = %q", out)
	}
}

func TestToken(t *testing.T) {
	out, err := execute(t, "", "token", "--user", "42", "--secret", "s3cret")
	if err != nil {
		t.Fatalf("token error = %v", err)
	}

	var got struct {
		Token  string `json:"token"`
		UserID int64  `json:"user_id"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output %q: %v", out, err)
	}

	id, err := jwt.ParseUserID(context.Background(), got.Token, "s3cret")
	if err != nil || id != 42 || got.UserID != 42 {
		t.Errorf("ParseUserID() = %d, %v; user_id %d", id, err, got.UserID)
	}

	if _, err := execute(t, "", "token", "--secret", "s3cret"); err == nil {
		t.Error("expected an error without --user")
	}
}
