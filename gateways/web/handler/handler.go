package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/xilidan/interview/services/interview/reporter"
	"github.com/xilidan/interview/services/interview/usecase"
)

// Reports queues background report generation.
type Reports interface {
	Submit(meetingID int64, audioURL string) (*reporter.Job, error)
	Status(meetingID int64) (*reporter.Job, error)
}

type handler struct {
	uc      usecase.Usecase
	reports Reports
	log     *slog.Logger
}

type Handler interface {
	Welcome(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)

	CreateMeeting(w http.ResponseWriter, r *http.Request)
	ListMeetings(w http.ResponseWriter, r *http.Request)
	GetMeeting(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	GetAnalysis(w http.ResponseWriter, r *http.Request)

	Suggest(w http.ResponseWriter, r *http.Request)
	GenerateReport(w http.ResponseWriter, r *http.Request)
	ReportStatus(w http.ResponseWriter, r *http.Request)
}

func NewHandler(uc usecase.Usecase, reports Reports, log *slog.Logger) Handler {
	return &handler{
		uc:      uc,
		reports: reports,
		log:     log,
	}
}

func meetingID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
