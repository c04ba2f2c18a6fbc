package extract

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
)

var reportSections = []Section{
	{Field: "confidence", Label: "CONFIDENCE:"},
	{Field: "clarity", Label: "CLARITY:"},
	{Field: "ques_count", Label: "QUESTION COUNT:"},
	{Field: "correct_ans_count", Label: "CORRECT ANSWERS:"},
	{Field: "wrong_ans_count", Label: "INCORRECT ANSWERS:"},
	{Field: "tech_knowledge", Label: "TECHNICAL KNOWLEDGE:"},
	{Field: "overall_fit", Label: "OVERALL FIT:"},
	{Field: "what_went_well", Label: "WHAT WENT WELL:"},
	{Field: "area_to_improve", Label: "AREAS TO IMPROVE:"},
	{Field: "ai_feedback", Label: "AI FEEDBACK:"},
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims", "  hello \n", "hello"},
		{"fence with language tag", "```json\n[\"a\"]\n```", `["a"]`},
		{"fence without tag", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence inside prose", "Sure:\n```json\n[1]\n```\nDone.", "Sure:\n[1]\nDone."},
		{"dangling opening fence", "```json\n[\"a\", \"b\"", `["a", "b"`},
		{"collapses blank lines", "a\n\n\n\n\nb", "a\n\nb"},
		{"keeps single blank line", "a\n\nb", "a\n\nb"},
		{"crlf", "a\r\n\r\n\r\n\r\nb", "a\n\nb"},
		{"bold markers", "**Strong** and **bold**", "Strong and bold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtract_JSONArray(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		want         []string
		wantFallback bool
	}{
		{
			name: "fenced and wrapped in prose",
			text: "Here are the questions you asked for:\n```json\n[\"a\",\"b\"]\n```\nGood luck!",
			want: []string{"a", "b"},
		},
		{
			name: "bare array",
			text: `["What is a goroutine?"]`,
			want: []string{"What is a goroutine?"},
		},
		{
			name: "empty array",
			text: "[]",
			want: []string{},
		},
		{
			name:         "numbered list",
			text:         "1. First question\n2. Second question",
			want:         []string{"First question", "Second question"},
			wantFallback: true,
		},
		{
			name:         "numbered list with preamble and bold",
			text:         "Questions:\n\n1. **Explain** channels.\n\n\n2. How does GC work?\n3. Describe 1.5 years at Acme.",
			want:         []string{"Explain channels.", "How does GC work?", "Describe 1.5 years at Acme."},
			wantFallback: true,
		},
		{
			name:         "adjacent markers",
			text:         "1. 2. x",
			want:         []string{"x"},
			wantFallback: true,
		},
		{
			name:         "marker glued to a word is text",
			text:         "See v1. notes\n1. alpha",
			want:         []string{"alpha"},
			wantFallback: true,
		},
		{
			name:         "non-string elements fall back",
			text:         `[1, 2, 3]`,
			want:         []string{"[1, 2, 3]"},
			wantFallback: true,
		},
		{
			name:         "gibberish",
			text:         "   no structure here at all   ",
			want:         []string{"no structure here at all"},
			wantFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Extract(Request{Text: tt.text, Mode: JSONArray})
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if !res.Success {
				t.Error("expected Success = true")
			}
			if res.FallbackUsed != tt.wantFallback {
				t.Errorf("FallbackUsed = %v, want %v", res.FallbackUsed, tt.wantFallback)
			}
			if !reflect.DeepEqual(res.Items, tt.want) {
				t.Errorf("Items = %#v, want %#v", res.Items, tt.want)
			}
		})
	}
}

func TestExtract_JSONArrayIdempotent(t *testing.T) {
	first, err := Extract(Request{Text: "1. First <question>\n2. Second & last", Mode: JSONArray})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	serialized, err := first.ItemsJSON()
	if err != nil {
		t.Fatalf("ItemsJSON() error = %v", err)
	}

	second, err := Extract(Request{Text: serialized, Mode: JSONArray})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if second.FallbackUsed {
		t.Error("re-extracting serialized items should not use the fallback")
	}
	if !reflect.DeepEqual(first.Items, second.Items) {
		t.Errorf("Items = %#v, want %#v", second.Items, first.Items)
	}
}

func TestExtract_JSONObject(t *testing.T) {
	t.Run("wrapped object", func(t *testing.T) {
		text := "```json\n{\n  \"clarity\": {\"score\": 8},\n  \"confidence\": {\"score\": 7},\n  \"speech_patterns\": \"steady\"\n}\n```\nLet me know!"
		res, err := Extract(Request{Text: text, Mode: JSONObject})
		if err != nil {
			t.Fatalf("Extract() error = %v", err)
		}
		if !res.Success || res.FallbackUsed {
			t.Fatalf("Success = %v, FallbackUsed = %v", res.Success, res.FallbackUsed)
		}
		clarity, _ := res.Object["clarity"].(map[string]any)
		if clarity["score"] != float64(8) {
			t.Errorf("clarity.score = %v, want 8", clarity["score"])
		}
		if res.Object["speech_patterns"] != "steady" {
			t.Errorf("speech_patterns = %v", res.Object["speech_patterns"])
		}
	})

	t.Run("malformed object", func(t *testing.T) {
		res, err := Extract(Request{Text: `{"clarity": {"score": 8}`, Mode: JSONObject})
		if err != nil {
			t.Fatalf("Extract() error = %v", err)
		}
		if res.Success {
			t.Error("expected Success = false")
		}
		if res.Object != nil {
			t.Errorf("Object = %#v, want nil", res.Object)
		}
	})

	t.Run("re-serialized object round trips", func(t *testing.T) {
		res, _ := Extract(Request{Text: `prefix {"a": [1, 2], "b": "c"} suffix`, Mode: JSONObject})
		b, err := json.Marshal(res.Object)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		again, _ := Extract(Request{Text: string(b), Mode: JSONObject})
		if !again.Success || !reflect.DeepEqual(res.Object, again.Object) {
			t.Errorf("Object = %#v, want %#v", again.Object, res.Object)
		}
	})
}

func TestExtract_DelimitedSections(t *testing.T) {
	text := `AI FEEDBACK: Solid candidate overall.

CONFIDENCE: 7

INCORRECT ANSWERS: 2
CORRECT ANSWERS: 5
CLARITY: **8**
QUESTION COUNT: 7



TECHNICAL KNOWLEDGE: 6
OVERALL FIT: 7
WHAT WENT WELL: Clear communication
Good fundamentals
AREAS TO IMPROVE: System design depth`

	res, err := Extract(Request{Text: text, Mode: DelimitedSections, Sections: reportSections})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !res.Success {
		t.Error("expected Success = true")
	}

	want := map[string]string{
		"confidence":        "7",
		"clarity":           "8",
		"ques_count":        "7",
		"correct_ans_count": "5",
		"wrong_ans_count":   "2",
		"tech_knowledge":    "6",
		"overall_fit":       "7",
		"what_went_well":    "Clear communication\nGood fundamentals",
		"area_to_improve":   "System design depth",
		"ai_feedback":       "Solid candidate overall.",
	}
	if !reflect.DeepEqual(res.Fields, want) {
		for k, v := range want {
			if res.Fields[k] != v {
				t.Errorf("Fields[%q] = %q, want %q", k, res.Fields[k], v)
			}
		}
	}
	if len(res.Missing) != 0 {
		t.Errorf("Missing = %v, want none", res.Missing)
	}
}

func TestExtract_DelimitedSectionsMissingLabel(t *testing.T) {
	text := "CONFIDENCE: 9\nOVERALL FIT: 4"
	res, err := Extract(Request{Text: text, Mode: DelimitedSections, Sections: reportSections})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if res.Fields["confidence"] != "9" {
		t.Errorf("confidence = %q, want 9", res.Fields["confidence"])
	}
	if res.Fields["overall_fit"] != "4" {
		t.Errorf("overall_fit = %q, want 4", res.Fields["overall_fit"])
	}
	if res.Fields["clarity"] != NotProvided {
		t.Errorf("clarity = %q, want %q", res.Fields["clarity"], NotProvided)
	}
	if len(res.Missing) != len(reportSections)-2 {
		t.Errorf("Missing = %v", res.Missing)
	}
	for key := range res.Fields {
		found := false
		for _, s := range reportSections {
			if s.Field == key {
				found = true
			}
		}
		if !found {
			t.Errorf("unexpected field %q", key)
		}
	}
}

func TestExtract_DelimitedSectionsRepeatedLabel(t *testing.T) {
	sections := []Section{{Field: "a", Label: "A:"}, {Field: "b", Label: "B:"}}
	res, err := Extract(Request{Text: "A: one A: two B: three", Mode: DelimitedSections, Sections: sections})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if res.Fields["a"] != "one" {
		t.Errorf("a = %q, want %q", res.Fields["a"], "one")
	}
	if res.Fields["b"] != "three" {
		t.Errorf("b = %q, want %q", res.Fields["b"], "three")
	}
}

func TestExtract_DelimitedSectionsCaseSensitive(t *testing.T) {
	sections := []Section{{Field: "fit", Label: "OVERALL FIT:"}}
	res, _ := Extract(Request{Text: "overall fit: 9", Mode: DelimitedSections, Sections: sections})
	if res.Fields["fit"] != NotProvided {
		t.Errorf("fit = %q, want %q", res.Fields["fit"], NotProvided)
	}
}

func TestExtract_DelimitedSectionsFieldPanics(t *testing.T) {
	orig := beforeField
	beforeField = func(s Section) {
		if s.Field == "clarity" {
			panic("boom")
		}
	}
	t.Cleanup(func() { beforeField = orig })

	res, err := Extract(Request{Text: "CONFIDENCE: 9\nCLARITY: 8", Mode: DelimitedSections, Sections: reportSections})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !res.Success {
		t.Error("expected Success = true")
	}
	if got, want := res.Fields["clarity"], "Error extracting clarity: boom"; got != want {
		t.Errorf("clarity = %q, want %q", got, want)
	}
	if res.Fields["confidence"] != "9" {
		t.Errorf("confidence = %q, want 9", res.Fields["confidence"])
	}
	missing := false
	for _, f := range res.Missing {
		if f == "clarity" {
			missing = true
		}
	}
	if !missing {
		t.Errorf("Missing = %v, want clarity listed", res.Missing)
	}
}

func TestExtract_UsageError(t *testing.T) {
	_, err := Extract(Request{Text: "CONFIDENCE: 1", Mode: DelimitedSections})
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("error = %v, want ErrUsage", err)
	}

	_, err = Extract(Request{Text: "x", Mode: Mode(42)})
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("error = %v, want ErrUsage", err)
	}
}

func TestExtract_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := Extract(Request{Text: "CONFIDENCE: 3 CLARITY: 4", Mode: DelimitedSections, Sections: reportSections[:2]})
			if err != nil || res.Fields["confidence"] != "3" || res.Fields["clarity"] != "4" {
				t.Errorf("unexpected result %#v, %v", res, err)
			}
		}()
	}
	wg.Wait()
}

func TestExtract_LargeInputTerminates(t *testing.T) {
	text := strings.Repeat("1. ", 20000) + strings.Repeat("x", 100000)
	res, err := Extract(Request{Text: text, Mode: JSONArray})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !res.FallbackUsed || len(res.Items) == 0 {
		t.Errorf("unexpected result: fallback=%v items=%d", res.FallbackUsed, len(res.Items))
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{DelimitedSections, JSONArray, JSONObject} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMode("xml"); !errors.Is(err, ErrUsage) {
		t.Errorf("ParseMode(xml) error = %v, want ErrUsage", err)
	}
}
