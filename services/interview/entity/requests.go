package entity

type (
	CreateMeetingRequest struct {
		Date            string     `json:"date"`
		Time            string     `json:"time"`
		Name            string     `json:"name"`
		InterviewerName string     `json:"interviewer_name"`
		MeetLink        string     `json:"meet_link"`
		Role            string     `json:"role"`
		JobDesc         string     `json:"job_desc"`
		Experience      Experience `json:"experience"`
		Skills          string     `json:"skills"`
	}

	UpdateStatusRequest struct {
		Status string `json:"status"`
	}

	SuggestionRequest struct {
		ID         int64      `json:"id"`
		Role       string     `json:"role"`
		JobDesc    string     `json:"job_desc"`
		Experience Experience `json:"experience"`
		Skills     string     `json:"skills"`
		Transcript string     `json:"transcript"`
	}

	SuggestionResponse struct {
		ExpectedQuestions string `json:"expected_questions"`
	}

	ReportRequest struct {
		Audio string `json:"audio"`
	}

	// VoiceAnalysis is the caller-facing result of analyzing a recording.
	VoiceAnalysis struct {
		Clarity        string `json:"clarity"`
		Confidence     string `json:"confidence"`
		SpeechPatterns string `json:"speech_patterns"`
	}
)
