// Package prompts renders the model prompts kept in prompts.yaml.
package prompts

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

const (
	ExpectedQuestions = "expected_questions"
	Suggestions       = "suggestions"
	Report            = "report"
	VoiceAnalysis     = "voice_analysis"
	Transcribe        = "transcribe"
)

var required = []string{ExpectedQuestions, Suggestions, Report, VoiceAnalysis, Transcribe}

//go:embed prompts.yaml
var embedded []byte

type (
	QuestionsData struct {
		JobDesc    string
		Experience string
		Skills     string
	}

	SuggestionsData struct {
		Role       string
		JobDesc    string
		Experience string
		Skills     string
		Transcript string
	}

	ReportData struct {
		Role       string
		JobDesc    string
		Experience string
		Skills     string
		Transcript string
	}

	VoiceData struct {
		Transcript string
		Features   Features
	}

	// Features mirrors the audio measurements quoted in the voice prompt.
	Features struct {
		MeanVolume      float64
		VolumeVariation float64
		SpeechRate      float64
		SilenceRatio    float64
		PitchMean       float64
		PitchVariation  float64
	}
)

type Prompts struct {
	templates map[string]*template.Template
}

func Load() (*Prompts, error) {
	return Parse(embedded)
}

func MustLoad() *Prompts {
	p, err := Load()
	if err != nil {
		panic("failed to load prompts: " + err.Error())
	}
	return p
}

// Parse reads a YAML mapping of prompt name to template text. Every prompt
// the service renders must be present.
func Parse(data []byte) (*Prompts, error) {
	raw := map[string]string{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse prompts: %w", err)
	}

	var missing []string
	for _, name := range required {
		if strings.TrimSpace(raw[name]) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing prompts: %s", strings.Join(missing, ", "))
	}

	p := &Prompts{templates: make(map[string]*template.Template, len(raw))}
	for name, text := range raw {
		tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse prompt %s: %w", name, err)
		}
		p.templates[name] = tmpl
	}
	return p, nil
}

func (p *Prompts) Render(name string, data any) (string, error) {
	tmpl, ok := p.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown prompt %q", name)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render prompt %s: %w", name, err)
	}
	return strings.TrimSpace(b.String()), nil
}

func (p *Prompts) Names() []string {
	names := make([]string, 0, len(p.templates))
	for name := range p.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
