package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/xilidan/interview/pkg/json"
	"github.com/xilidan/interview/services/interview/entity"
)

func (h *handler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req entity.SuggestionRequest
	if err := json.ParseJSON(r, &req); err != nil {
		json.WriteError(w, http.StatusUnprocessableEntity, err)
		return
	}

	res, err := h.uc.Suggest(r.Context(), &req)
	if err != nil {
		h.fail(w, r, req.ID, err)
		return
	}
	json.WriteStatus(w, http.StatusOK, map[string]any{"expected_questions": res.ExpectedQuestions})
}

// GenerateReport checks the meeting exists, then hands the work to the
// background reporter and answers immediately.
func (h *handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	id, ok := meetingID(r)
	if !ok {
		h.badRequest(w, "invalid meeting id")
		return
	}

	var req entity.ReportRequest
	if err := json.ParseJSON(r, &req); err != nil {
		json.WriteError(w, http.StatusUnprocessableEntity, err)
		return
	}

	if _, err := h.uc.GetMeeting(r.Context(), id); err != nil {
		h.fail(w, r, id, err)
		return
	}

	job, err := h.reports.Submit(id, strings.TrimSpace(req.Audio))
	if err != nil {
		h.fail(w, r, id, err)
		return
	}

	h.log.Info("report queued", slog.Int64("meeting_id", id), slog.String("job_id", job.ID))
	json.WriteStatus(w, http.StatusAccepted, map[string]any{
		"message": fmt.Sprintf("Report generation initiated for meeting ID %d", id),
		"job_id":  job.ID,
	})
}

func (h *handler) ReportStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := meetingID(r)
	if !ok {
		h.badRequest(w, "invalid meeting id")
		return
	}

	job, err := h.reports.Status(id)
	if err != nil {
		h.fail(w, r, id, err)
		return
	}
	json.WriteStatus(w, http.StatusOK, map[string]any{"job": job})
}
