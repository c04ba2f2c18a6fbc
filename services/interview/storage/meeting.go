package storage

import (
	"context"
	"fmt"

	"github.com/xilidan/interview/pkg/logger"
	"github.com/xilidan/interview/services/interview/entity"
	"github.com/xilidan/interview/services/interview/storage/postgres/ent"
	"github.com/xilidan/interview/services/interview/storage/postgres/ent/hook"
	"github.com/xilidan/interview/services/interview/storage/postgres/ent/meeting"
)

// logMutations records which columns every meeting write touched.
func logMutations(next ent.Mutator) ent.Mutator {
	return hook.MeetingFunc(func(ctx context.Context, m *ent.MeetingMutation) (ent.Value, error) {
		v, err := next.Mutate(ctx, m)
		if err != nil {
			return v, err
		}
		id, _ := m.ID()
		logger.Debug(ctx, "meeting mutation",
			"op", m.Op(),
			"meeting_id", id,
			"fields", m.Fields(),
		)
		return v, nil
	})
}

func (s *storage) CreateMeeting(ctx context.Context, m *entity.Meeting) (*entity.Meeting, error) {
	status := m.Status
	if status == "" {
		status = entity.StatusScheduled
	}

	entMeeting, err := s.Meeting.Create().
		SetDate(m.Date).
		SetTime(m.Time).
		SetName(m.Name).
		SetInterviewerName(m.InterviewerName).
		SetMeetLink(m.MeetLink).
		SetRole(m.Role).
		SetJobDesc(m.JobDesc).
		SetExperience(m.Experience.String()).
		SetSkills(m.Skills).
		SetStatus(meeting.Status(status)).
		SetNillableExpectedQuestions(m.ExpectedQuestions).
		Save(ctx)
	if err != nil {
		logger.Error(ctx, "failed to create meeting", "error", err)
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	return entity.MakeMeetingEntToEntity(entMeeting), nil
}

func (s *storage) ListMeetings(ctx context.Context) ([]*entity.Meeting, error) {
	entMeetings, err := s.Meeting.Query().
		Order(meeting.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	meetings := make([]*entity.Meeting, 0, len(entMeetings))
	for _, m := range entMeetings {
		meetings = append(meetings, entity.MakeMeetingEntToEntity(m))
	}
	return meetings, nil
}

func (s *storage) GetMeeting(ctx context.Context, id int64) (*entity.Meeting, error) {
	entMeeting, err := s.Meeting.Get(ctx, id)
	if err != nil {
		return nil, wrapErr(id, "get meeting", err)
	}
	return entity.MakeMeetingEntToEntity(entMeeting), nil
}

func (s *storage) UpdateStatus(ctx context.Context, id int64, status entity.MeetingStatus) error {
	err := s.Meeting.UpdateOneID(id).
		SetStatus(meeting.Status(status)).
		Exec(ctx)
	return wrapErr(id, "update status", err)
}

func (s *storage) UpdateTranscript(ctx context.Context, id int64, transcript string) error {
	err := s.Meeting.UpdateOneID(id).
		SetTranscript(transcript).
		Exec(ctx)
	return wrapErr(id, "update transcript", err)
}

func (s *storage) UpdateExpectedQuestions(ctx context.Context, id int64, questions string) error {
	err := s.Meeting.UpdateOneID(id).
		SetExpectedQuestions(questions).
		Exec(ctx)
	return wrapErr(id, "update expected questions", err)
}

func (s *storage) UpdateAudio(ctx context.Context, id int64, audioURL string) error {
	err := s.Meeting.UpdateOneID(id).
		SetAudio(audioURL).
		Exec(ctx)
	return wrapErr(id, "update audio", err)
}

// SaveReview writes the non-nil analysis fields. The review is marked ready
// when ready is set and never flipped back.
func (s *storage) SaveReview(ctx context.Context, id int64, review entity.Analysis, ready bool) error {
	update := s.Meeting.UpdateOneID(id).
		SetNillableConfidence(review.Confidence).
		SetNillableClarity(review.Clarity).
		SetNillableQuesCount(review.QuesCount).
		SetNillableCorrectAnsCount(review.CorrectAnsCount).
		SetNillableWrongAnsCount(review.WrongAnsCount).
		SetNillableTechKnowledge(review.TechKnowledge).
		SetNillableOverallFit(review.OverallFit).
		SetNillableAiFeedback(review.AIFeedback).
		SetNillableWhatWentWell(review.WhatWentWell).
		SetNillableAreaToImprove(review.AreaToImprove).
		SetNillableSpeechPatterns(review.SpeechPatterns)
	if ready {
		update.SetIsReviewReady(true)
	}

	return wrapErr(id, "save review", update.Exec(ctx))
}

func wrapErr(id int64, op string, err error) error {
	switch {
	case err == nil:
		return nil
	case ent.IsNotFound(err):
		return fmt.Errorf("meeting %d: %w", id, ErrNotFound)
	default:
		return fmt.Errorf("failed to %s for meeting %d: %w", op, id, err)
	}
}
