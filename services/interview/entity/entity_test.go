package entity

import (
	"encoding/json"
	"testing"
)

func TestExperienceUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    Experience
		wantErr bool
	}{
		{in: `5`, want: "5"},
		{in: `"5 years"`, want: "5 years"},
		{in: `2.5`, want: "2.5"},
		{in: `null`, want: ""},
		{in: `true`, wantErr: true},
	}
	for _, tt := range tests {
		var got struct {
			Experience Experience `json:"experience"`
		}
		err := json.Unmarshal([]byte(`{"experience":`+tt.in+`}`), &got)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got.Experience != tt.want {
			t.Errorf("%s: got %q, want %q", tt.in, got.Experience, tt.want)
		}
	}
}

func TestParseMeetingStatus(t *testing.T) {
	if st, err := ParseMeetingStatus("In Progress"); err != nil || st != StatusInProgress {
		t.Errorf("ParseMeetingStatus() = %q, %v", st, err)
	}
	if _, err := ParseMeetingStatus("in progress"); err == nil {
		t.Error("expected error for lowercase status")
	}
}

func TestAnalysisEmpty(t *testing.T) {
	var a Analysis
	if !a.Empty() {
		t.Error("zero analysis should be empty")
	}
	a.OverallFit = Ptr("")
	if !a.Empty() {
		t.Error("blank values count as empty")
	}
	a.SpeechPatterns = Ptr("steady pace")
	if a.Empty() {
		t.Error("analysis with speech patterns is not empty")
	}
}
