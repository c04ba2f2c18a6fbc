package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xilidan/interview/pkg/extract"
	"github.com/xilidan/interview/pkg/logger"
	"github.com/xilidan/interview/services/interview/entity"
	"github.com/xilidan/interview/services/interview/prompts"
)

// suggestionsDelimiter separates free-text questions stored earlier from
// suggestions appended later.
const suggestionsDelimiter = "\n\n--- Suggested questions ---\n"

func (u *usecase) Suggest(ctx context.Context, req *entity.SuggestionRequest) (*entity.SuggestionResponse, error) {
	if req.ID <= 0 {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}
	log := logger.Meeting(ctx, req.ID)

	m, err := u.storage.GetMeeting(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	transcript := strings.TrimSpace(req.Transcript)
	switch {
	case transcript != "":
		if err := u.storage.UpdateTranscript(ctx, m.ID, req.Transcript); err != nil {
			return nil, err
		}
		transcript = req.Transcript
	case strings.TrimSpace(m.TranscriptText()) != "":
		transcript = m.TranscriptText()
	default:
		return nil, ErrNoTranscript
	}

	prompt, err := u.prompts.Render(prompts.Suggestions, prompts.SuggestionsData{
		Role:       orDefault(req.Role, m.Role),
		JobDesc:    orDefault(req.JobDesc, m.JobDesc),
		Experience: orDefault(req.Experience.String(), m.Experience.String()),
		Skills:     orDefault(req.Skills, m.Skills),
		Transcript: transcript,
	})
	if err != nil {
		return nil, err
	}

	reply, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate suggestions: %w", err)
	}

	res, err := extract.Extract(extract.Request{Text: reply, Mode: extract.JSONArray})
	if err != nil {
		return nil, err
	}
	if res.FallbackUsed {
		log.Warn("suggestions reply was not a JSON array", "items", len(res.Items))
	}

	merged, err := mergeQuestions(m.ExpectedQuestionsText(), res.Items)
	if err != nil {
		return nil, err
	}
	if err := u.storage.UpdateExpectedQuestions(ctx, m.ID, merged); err != nil {
		return nil, err
	}

	suggestions, err := res.ItemsJSON()
	if err != nil {
		return nil, err
	}
	log.Info("suggestions generated", "count", len(res.Items))

	return &entity.SuggestionResponse{ExpectedQuestions: suggestions}, nil
}

// mergeQuestions appends suggestions to the stored questions. A stored JSON
// array stays a single JSON array; anything else is kept verbatim and the
// suggestions follow a delimiter.
func mergeQuestions(previous string, suggestions []string) (string, error) {
	if suggestions == nil {
		suggestions = []string{}
	}

	if strings.TrimSpace(previous) == "" {
		return marshalQuestions(suggestions)
	}

	var existing []any
	if err := json.Unmarshal([]byte(previous), &existing); err == nil {
		for _, s := range suggestions {
			existing = append(existing, s)
		}
		return marshalQuestions(existing)
	}

	appended, err := marshalQuestions(suggestions)
	if err != nil {
		return "", err
	}
	return previous + suggestionsDelimiter + appended, nil
}

func marshalQuestions[T any](items []T) (string, error) {
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to marshal questions: %w", err)
	}
	return string(b), nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
