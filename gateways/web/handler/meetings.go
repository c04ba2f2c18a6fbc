package handler

import (
	"log/slog"
	"net/http"

	"github.com/xilidan/interview/pkg/json"
	"github.com/xilidan/interview/services/interview/entity"
)

func (h *handler) Welcome(w http.ResponseWriter, r *http.Request) {
	json.WriteJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Interview Management API"})
}

func (h *handler) Health(w http.ResponseWriter, r *http.Request) {
	json.WriteStatus(w, http.StatusOK, map[string]any{"healthy": true})
}

func (h *handler) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	var req entity.CreateMeetingRequest
	if err := json.ParseJSON(r, &req); err != nil {
		json.WriteError(w, http.StatusUnprocessableEntity, err)
		return
	}

	m, err := h.uc.CreateMeeting(r.Context(), &req)
	if err != nil {
		h.fail(w, r, 0, err)
		return
	}

	h.log.Info("meeting created", slog.Int64("meeting_id", m.ID))
	json.WriteStatus(w, http.StatusCreated, map[string]any{"id": m.ID})
}

func (h *handler) ListMeetings(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.uc.ListMeetings(r.Context())
	if err != nil {
		h.fail(w, r, 0, err)
		return
	}
	json.WriteStatus(w, http.StatusOK, map[string]any{"meetings": meetings})
}

func (h *handler) GetMeeting(w http.ResponseWriter, r *http.Request) {
	id, ok := meetingID(r)
	if !ok {
		h.badRequest(w, "invalid meeting id")
		return
	}

	m, err := h.uc.GetMeeting(r.Context(), id)
	if err != nil {
		h.fail(w, r, id, err)
		return
	}
	json.WriteStatus(w, http.StatusOK, map[string]any{"meeting": m})
}

func (h *handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := meetingID(r)
	if !ok {
		h.badRequest(w, "invalid meeting id")
		return
	}

	var req entity.UpdateStatusRequest
	if err := json.ParseJSON(r, &req); err != nil {
		json.WriteError(w, http.StatusUnprocessableEntity, err)
		return
	}

	m, err := h.uc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.fail(w, r, id, err)
		return
	}
	json.WriteStatus(w, http.StatusOK, map[string]any{"meeting": m})
}

func (h *handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := meetingID(r)
	if !ok {
		h.badRequest(w, "invalid meeting id")
		return
	}

	analysis, err := h.uc.GetAnalysis(r.Context(), id)
	if err != nil {
		h.fail(w, r, id, err)
		return
	}
	json.WriteStatus(w, http.StatusOK, map[string]any{"analysis": analysis})
}
