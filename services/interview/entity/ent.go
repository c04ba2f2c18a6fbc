package entity

import "github.com/xilidan/interview/services/interview/storage/postgres/ent"

func MakeMeetingEntToEntity(m *ent.Meeting) *Meeting {
	return &Meeting{
		ID:                m.ID,
		Date:              m.Date,
		Time:              m.Time,
		Name:              m.Name,
		InterviewerName:   m.InterviewerName,
		MeetLink:          m.MeetLink,
		Role:              m.Role,
		JobDesc:           m.JobDesc,
		Experience:        Experience(m.Experience),
		Skills:            m.Skills,
		Status:            MeetingStatus(m.Status),
		IsReviewReady:     m.IsReviewReady,
		Audio:             m.Audio,
		Transcript:        m.Transcript,
		ExpectedQuestions: m.ExpectedQuestions,
		Analysis: Analysis{
			Confidence:      m.Confidence,
			Clarity:         m.Clarity,
			QuesCount:       m.QuesCount,
			CorrectAnsCount: m.CorrectAnsCount,
			WrongAnsCount:   m.WrongAnsCount,
			TechKnowledge:   m.TechKnowledge,
			OverallFit:      m.OverallFit,
			AIFeedback:      m.AiFeedback,
			WhatWentWell:    m.WhatWentWell,
			AreaToImprove:   m.AreaToImprove,
			SpeechPatterns:  m.SpeechPatterns,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
