package entity

import (
	"fmt"
	"time"
)

type MeetingStatus string

const (
	StatusScheduled  MeetingStatus = "Scheduled"
	StatusInProgress MeetingStatus = "In Progress"
	StatusCompleted  MeetingStatus = "Completed"
	StatusCancelled  MeetingStatus = "Cancelled"
)

func ParseMeetingStatus(s string) (MeetingStatus, error) {
	switch st := MeetingStatus(s); st {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return st, nil
	}
	return "", fmt.Errorf("unknown meeting status %q", s)
}

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

type (
	Meeting struct {
		ID              int64         `json:"id"`
		Date            string        `json:"date"`
		Time            string        `json:"time"`
		Name            string        `json:"name"`
		InterviewerName string        `json:"interviewer_name"`
		MeetLink        string        `json:"meet_link"`
		Role            string        `json:"role"`
		JobDesc         string        `json:"job_desc"`
		Experience      Experience    `json:"experience"`
		Skills          string        `json:"skills"`
		Status          MeetingStatus `json:"status"`
		IsReviewReady   bool          `json:"is_review_ready"`

		Audio             *string `json:"audio"`
		Transcript        *string `json:"transcript"`
		ExpectedQuestions *string `json:"expected_questions"`

		Analysis

		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	// Analysis holds the review fields written once a report completes.
	Analysis struct {
		Confidence      *string `json:"confidence"`
		Clarity         *string `json:"clarity"`
		QuesCount       *string `json:"ques_count"`
		CorrectAnsCount *string `json:"correct_ans_count"`
		WrongAnsCount   *string `json:"wrong_ans_count"`
		TechKnowledge   *string `json:"tech_knowledge"`
		OverallFit      *string `json:"overall_fit"`
		AIFeedback      *string `json:"ai_feedback"`
		WhatWentWell    *string `json:"what_went_well"`
		AreaToImprove   *string `json:"area_to_improve"`
		SpeechPatterns  *string `json:"speech_patterns"`
	}

	MeetingListItem struct {
		ID              int64         `json:"id"`
		Date            string        `json:"date"`
		Time            string        `json:"time"`
		Name            string        `json:"name"`
		InterviewerName string        `json:"interviewer_name"`
		MeetLink        string        `json:"meet_link"`
		Status          MeetingStatus `json:"status"`
		Role            string        `json:"role"`
	}
)

// Empty reports whether no analysis field carries a non-empty value.
func (a Analysis) Empty() bool {
	for _, v := range a.fields() {
		if v != nil && *v != "" {
			return false
		}
	}
	return true
}

func (a Analysis) fields() []*string {
	return []*string{
		a.Confidence, a.Clarity, a.QuesCount, a.CorrectAnsCount, a.WrongAnsCount,
		a.TechKnowledge, a.OverallFit, a.AIFeedback, a.WhatWentWell, a.AreaToImprove,
		a.SpeechPatterns,
	}
}

func (m *Meeting) ListItem() MeetingListItem {
	return MeetingListItem{
		ID:              m.ID,
		Date:            m.Date,
		Time:            m.Time,
		Name:            m.Name,
		InterviewerName: m.InterviewerName,
		MeetLink:        m.MeetLink,
		Status:          m.Status,
		Role:            m.Role,
	}
}

func (m *Meeting) TranscriptText() string {
	if m.Transcript == nil {
		return ""
	}
	return *m.Transcript
}

func (m *Meeting) ExpectedQuestionsText() string {
	if m.ExpectedQuestions == nil {
		return ""
	}
	return *m.ExpectedQuestions
}

func Ptr(s string) *string {
	return &s
}
