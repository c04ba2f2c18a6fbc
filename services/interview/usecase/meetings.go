package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xilidan/interview/pkg/extract"
	"github.com/xilidan/interview/pkg/logger"
	"github.com/xilidan/interview/services/interview/entity"
	"github.com/xilidan/interview/services/interview/prompts"
)

var timeLayouts = []string{entity.TimeLayout, "15:04", "15:04:05.999999", "15:04:05Z07:00"}

func (u *usecase) CreateMeeting(ctx context.Context, req *entity.CreateMeetingRequest) (*entity.Meeting, error) {
	log := logger.FromContext(ctx)

	m, err := validateMeeting(req)
	if err != nil {
		return nil, err
	}

	questions, err := u.expectedQuestions(ctx, req)
	if err != nil {
		log.Warn("failed to generate expected questions, creating meeting without them", "error", err)
	} else {
		m.ExpectedQuestions = &questions
	}

	created, err := u.storage.CreateMeeting(ctx, m)
	if err != nil {
		return nil, err
	}
	log.Info("meeting scheduled", "meeting_id", created.ID, "date", created.Date, "time", created.Time)

	return created, nil
}

func validateMeeting(req *entity.CreateMeetingRequest) (*entity.Meeting, error) {
	var problems []string
	required := map[string]string{
		"name":             req.Name,
		"interviewer_name": req.InterviewerName,
		"meet_link":        req.MeetLink,
		"role":             req.Role,
	}
	for _, field := range []string{"name", "interviewer_name", "meet_link", "role"} {
		if strings.TrimSpace(required[field]) == "" {
			problems = append(problems, field+" is required")
		}
	}

	date, err := time.Parse(entity.DateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		problems = append(problems, fmt.Sprintf("date %q must be YYYY-MM-DD", req.Date))
	}
	clock, ok := parseClock(req.Time)
	if !ok {
		problems = append(problems, fmt.Sprintf("time %q must be HH:MM or HH:MM:SS", req.Time))
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, "; "))
	}

	return &entity.Meeting{
		Date:            date.Format(entity.DateLayout),
		Time:            clock,
		Name:            strings.TrimSpace(req.Name),
		InterviewerName: strings.TrimSpace(req.InterviewerName),
		MeetLink:        strings.TrimSpace(req.MeetLink),
		Role:            strings.TrimSpace(req.Role),
		JobDesc:         req.JobDesc,
		Experience:      req.Experience,
		Skills:          req.Skills,
		Status:          entity.StatusScheduled,
	}, nil
}

func parseClock(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(entity.TimeLayout), true
		}
	}
	return "", false
}

func (u *usecase) expectedQuestions(ctx context.Context, req *entity.CreateMeetingRequest) (string, error) {
	prompt, err := u.prompts.Render(prompts.ExpectedQuestions, prompts.QuestionsData{
		JobDesc:    req.JobDesc,
		Experience: req.Experience.String(),
		Skills:     req.Skills,
	})
	if err != nil {
		return "", err
	}

	reply, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate questions: %w", err)
	}

	res, err := extract.Extract(extract.Request{Text: reply, Mode: extract.JSONArray})
	if err != nil {
		return "", err
	}
	if res.FallbackUsed {
		logger.Warn(ctx, "expected questions reply was not a JSON array", "items", len(res.Items))
	}
	return res.ItemsJSON()
}

func (u *usecase) ListMeetings(ctx context.Context) ([]entity.MeetingListItem, error) {
	meetings, err := u.storage.ListMeetings(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]entity.MeetingListItem, len(meetings))
	for i, m := range meetings {
		items[i] = m.ListItem()
	}
	return items, nil
}

func (u *usecase) GetMeeting(ctx context.Context, id int64) (*entity.Meeting, error) {
	return u.storage.GetMeeting(ctx, id)
}

func (u *usecase) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Meeting, error) {
	st, err := entity.ParseMeetingStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := u.storage.UpdateStatus(ctx, id, st); err != nil {
		return nil, err
	}
	logger.Meeting(ctx, id).Info("meeting status updated", "status", st)

	return u.storage.GetMeeting(ctx, id)
}

func (u *usecase) GetAnalysis(ctx context.Context, id int64) (*entity.Analysis, error) {
	m, err := u.storage.GetMeeting(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Analysis.Empty() {
		return nil, fmt.Errorf("meeting %d: %w", id, ErrNoAnalysis)
	}
	return &m.Analysis, nil
}
