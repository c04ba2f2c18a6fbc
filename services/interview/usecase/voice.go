package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/xilidan/interview/pkg/extract"
	"github.com/xilidan/interview/pkg/logger"
	"github.com/xilidan/interview/services/interview/audio"
	"github.com/xilidan/interview/services/interview/entity"
	"github.com/xilidan/interview/services/interview/prompts"
)

const voiceSchema = `{
	"type": "object",
	"required": ["clarity", "confidence", "speech_patterns"],
	"properties": {
		"clarity":    {"$ref": "#/$defs/score"},
		"confidence": {"$ref": "#/$defs/score"},
		"speech_patterns": {"type": ["string", "object", "array"]}
	},
	"$defs": {
		"score": {
			"type": "object",
			"required": ["score"],
			"properties": {"score": {"type": ["number", "string"]}}
		}
	}
}`

var voiceContract = jsonschema.MustCompileString("voice.json", voiceSchema)

func (u *usecase) AnalyzeVoice(ctx context.Context, audioURL string) (*entity.VoiceAnalysis, error) {
	log := logger.FromContext(ctx)

	src, err := u.audio.Download(ctx, audioURL)
	if err != nil {
		return nil, err
	}
	defer audio.Cleanup(ctx, src)

	wavPath, err := u.converter.ToWAV(ctx, src)
	if err != nil {
		return nil, err
	}
	defer audio.Cleanup(ctx, wavPath)

	wav, err := audio.ReadWAV(wavPath)
	if err != nil {
		return nil, err
	}
	features := u.analyze(wav.Samples, wav.SampleRate)
	log.Debug("extracted audio features", "duration", wav.Duration(), "features", features)

	transcript, err := u.transcriber.Transcribe(ctx, wavPath)
	if err != nil {
		return nil, fmt.Errorf("failed to transcribe audio: %w", err)
	}
	if strings.TrimSpace(transcript) == "" {
		return nil, fmt.Errorf("failed to transcribe audio: empty transcript")
	}

	prompt, err := u.prompts.Render(prompts.VoiceAnalysis, prompts.VoiceData{
		Transcript: transcript,
		Features:   prompts.Features(features),
	})
	if err != nil {
		return nil, err
	}

	reply, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze voice: %w", err)
	}

	return parseVoiceReply(reply)
}

func parseVoiceReply(reply string) (*entity.VoiceAnalysis, error) {
	res, err := extract.Extract(extract.Request{Text: reply, Mode: extract.JSONObject})
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, fmt.Errorf("%w: no JSON object in reply", ErrVoiceResult)
	}

	if err := voiceContract.Validate(res.Object); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVoiceResult, err)
	}

	return &entity.VoiceAnalysis{
		Clarity:        scoreText(res.Object["clarity"]),
		Confidence:     scoreText(res.Object["confidence"]),
		SpeechPatterns: valueText(res.Object["speech_patterns"]),
	}, nil
}

func scoreText(v any) string {
	obj, _ := v.(map[string]any)
	return valueText(obj["score"])
}

func valueText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
