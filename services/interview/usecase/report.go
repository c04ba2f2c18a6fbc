package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/xilidan/interview/pkg/extract"
	"github.com/xilidan/interview/pkg/logger"
	"github.com/xilidan/interview/services/interview/entity"
	"github.com/xilidan/interview/services/interview/prompts"
)

// ReportSections are the labels the report prompt asks the model to use.
// INCORRECT ANSWERS contains CORRECT ANSWERS; the extractor keeps them apart.
var ReportSections = []extract.Section{
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

func (u *usecase) GenerateReport(ctx context.Context, meetingID int64, audioURL string) error {
	log := logger.Meeting(ctx, meetingID)
	ctx = logger.WithContext(ctx, log)

	m, err := u.storage.GetMeeting(ctx, meetingID)
	if err != nil {
		return err
	}

	audioURL = strings.TrimSpace(audioURL)
	if audioURL != "" {
		if err := u.storage.UpdateAudio(ctx, meetingID, audioURL); err != nil {
			return err
		}
	}

	var (
		voice     *entity.VoiceAnalysis
		report    map[string]string
		reportErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	if audioURL != "" {
		g.Go(func() error {
			v, err := u.AnalyzeVoice(gctx, audioURL)
			if err != nil {
				log.Warn("voice analysis failed", "error", err)
				return nil
			}
			voice = v
			log.Info("voice analysis completed")
			return nil
		})
	}

	transcript := m.TranscriptText()
	if strings.TrimSpace(transcript) == "" {
		reportErr = ErrNoTranscript
		log.Warn("cannot generate report: no transcript available")
	} else {
		g.Go(func() error {
			report, reportErr = u.textReport(gctx, m)
			if reportErr != nil {
				log.Error("report generation failed", "error", reportErr)
			}
			return nil
		})
	}
	g.Wait()

	review := mergeReview(report, voice)
	if voice == nil && report == nil {
		return reportErr
	}

	if err := u.storage.SaveReview(ctx, meetingID, review, report != nil); err != nil {
		return err
	}
	if report == nil {
		return reportErr
	}

	log.Info("report generation completed", "voice", voice != nil)
	return nil
}

func (u *usecase) textReport(ctx context.Context, m *entity.Meeting) (map[string]string, error) {
	prompt, err := u.prompts.Render(prompts.Report, prompts.ReportData{
		Role:       m.Role,
		JobDesc:    m.JobDesc,
		Experience: m.Experience.String(),
		Skills:     m.Skills,
		Transcript: m.TranscriptText(),
	})
	if err != nil {
		return nil, err
	}

	reply, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	res, err := extract.Extract(extract.Request{
		Text:     reply,
		Mode:     extract.DelimitedSections,
		Sections: ReportSections,
	})
	if err != nil {
		return nil, err
	}
	if len(res.Missing) > 0 {
		logger.Warn(ctx, "report sections missing", "fields", res.Missing)
	}
	return res.Fields, nil
}

// mergeReview builds the analysis to persist. Voice results win for clarity,
// confidence and speech patterns; report values fill them otherwise.
func mergeReview(report map[string]string, voice *entity.VoiceAnalysis) entity.Analysis {
	field := func(name string) *string {
		v, ok := report[name]
		if !ok {
			return nil
		}
		return &v
	}

	a := entity.Analysis{
		Confidence:      field("confidence"),
		Clarity:         field("clarity"),
		QuesCount:       field("ques_count"),
		CorrectAnsCount: field("correct_ans_count"),
		WrongAnsCount:   field("wrong_ans_count"),
		TechKnowledge:   field("tech_knowledge"),
		OverallFit:      field("overall_fit"),
		AIFeedback:      field("ai_feedback"),
		WhatWentWell:    field("what_went_well"),
		AreaToImprove:   field("area_to_improve"),
	}

	if voice != nil {
		a.Clarity = nonEmpty(voice.Clarity, a.Clarity)
		a.Confidence = nonEmpty(voice.Confidence, a.Confidence)
		a.SpeechPatterns = nonEmpty(voice.SpeechPatterns, nil)
	}
	return a
}

func nonEmpty(v string, fallback *string) *string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return &v
}
