package canned

import (
	"context"
	"errors"
	"testing"
)

func TestGeneratorRules(t *testing.T) {
	gen, tr := Offline()
	ctx := context.Background()

	tests := []struct {
		prompt string
		want   string
	}{
		{prompt: "... AREAS TO IMPROVE: ...", want: ReportReply},
		{prompt: `{"speech_patterns": ...}`, want: VoiceReply},
		{prompt: "suggest three questions", want: QuestionsReply},
	}
	for _, tt := range tests {
		got, err := gen.Generate(ctx, tt.prompt)
		if err != nil || got != tt.want {
			t.Errorf("Generate(%q) = %q, %v", tt.prompt, got, err)
		}
	}
	if len(gen.Prompts()) != len(tests) {
		t.Errorf("recorded %d prompts", len(gen.Prompts()))
	}

	text, err := tr.Transcribe(ctx, "a.wav")
	if err != nil || text != TranscriptText {
		t.Errorf("Transcribe() = %q, %v", text, err)
	}
}

func TestGeneratorFail(t *testing.T) {
	boom := errors.New("boom")
	gen := NewGenerator("x").Fail(boom)
	if _, err := gen.Generate(context.Background(), "p"); !errors.Is(err, boom) {
		t.Errorf("err = %v", err)
	}
}
