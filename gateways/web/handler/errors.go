package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/xilidan/interview/pkg/json"
	"github.com/xilidan/interview/services/interview/reporter"
	"github.com/xilidan/interview/services/interview/storage"
	"github.com/xilidan/interview/services/interview/usecase"
)

// fail maps domain errors to the status codes and messages clients expect.
func (h *handler) fail(w http.ResponseWriter, r *http.Request, id int64, err error) {
	status, msg := http.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", err)

	switch {
	case errors.Is(err, storage.ErrNotFound):
		status, msg = http.StatusNotFound, fmt.Sprintf("Meeting with ID %d not found", id)
	case errors.Is(err, usecase.ErrNoAnalysis):
		status, msg = http.StatusNotFound, fmt.Sprintf("Analysis data not available for meeting with ID %d", id)
	case errors.Is(err, reporter.ErrJobNotFound):
		status, msg = http.StatusNotFound, fmt.Sprintf("No report generation found for meeting ID %d", id)
	case errors.Is(err, usecase.ErrNoTranscript):
		status, msg = http.StatusBadRequest, usecase.ErrNoTranscript.Error()
	case errors.Is(err, usecase.ErrValidation):
		status, msg = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, reporter.ErrJobRunning):
		status, msg = http.StatusConflict, fmt.Sprintf("Report generation already running for meeting ID %d", id)
	case errors.Is(err, reporter.ErrClosed):
		status, msg = http.StatusServiceUnavailable, "Service is shutting down"
	}

	log := h.log.With(slog.String("method", r.Method), slog.String("path", r.URL.Path), slog.Int("status", status))
	if status >= http.StatusInternalServerError {
		log.Error("request failed", slog.String("error", err.Error()))
	} else {
		log.Debug("request rejected", slog.String("error", err.Error()))
	}

	json.WriteError(w, status, errors.New(msg))
}

func (h *handler) badRequest(w http.ResponseWriter, msg string) {
	json.WriteError(w, http.StatusBadRequest, errors.New(msg))
}
