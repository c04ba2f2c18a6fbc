package prompts

import (
	"strings"
	"testing"
)

func TestEmbeddedPromptsLoad(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := len(p.Names()); got < len(required) {
		t.Errorf("Names() has %d entries", got)
	}
}

func TestReportPromptListsAllLabels(t *testing.T) {
	p := MustLoad()
	out, err := p.Render(Report, ReportData{
		Role:       "Backend Engineer",
		JobDesc:    "Go services",
		Experience: "5",
		Skills:     "Go",
		Transcript: "Q: What is a channel?",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	labels := []string{
		"CONFIDENCE:", "CLARITY:", "QUESTION COUNT:", "CORRECT ANSWERS:", "INCORRECT ANSWERS:",
		"TECHNICAL KNOWLEDGE:", "OVERALL FIT:", "WHAT WENT WELL:", "AREAS TO IMPROVE:", "AI FEEDBACK:",
	}
	for _, l := range labels {
		if !strings.Contains(out, l) {
			t.Errorf("report prompt is missing %q", l)
		}
	}
	if !strings.Contains(out, "Q: What is a channel?") {
		t.Error("report prompt is missing the transcript")
	}
}

func TestVoicePromptFormatsFeatures(t *testing.T) {
	out, err := MustLoad().Render(VoiceAnalysis, VoiceData{
		Transcript: "hello",
		Features:   Features{MeanVolume: 0.05, PitchMean: 180.25},
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "Mean Volume: 0.050000") || !strings.Contains(out, "Pitch Mean: 180.25") {
		t.Errorf("unexpected prompt:\n%s", out)
	}
	if !strings.Contains(out, `"speech_patterns"`) {
		t.Error("voice prompt must show the expected JSON shape")
	}
}

func TestRenderErrors(t *testing.T) {
	p := MustLoad()
	if _, err := p.Render("nope", nil); err == nil {
		t.Error("expected unknown prompt error")
	}
	if _, err := p.Render(Suggestions, map[string]string{"Role": "x"}); err == nil {
		t.Error("expected missing key error")
	}
}

func TestParseRequiresAllPrompts(t *testing.T) {
	_, err := Parse([]byte("report: hi\n"))
	if err == nil || !strings.Contains(err.Error(), ExpectedQuestions) {
		t.Errorf("err = %v", err)
	}
}
