package api

import (
	"encoding/json"
	"errors"
	"net/http"

	skerrors "github.com/harunnryd/skillmart/internal/errors"
	"github.com/harunnryd/skillmart/internal/logger"
)

type errorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Warn("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	err = skerrors.Classify(err)
	status := skerrors.HTTPStatus(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error("Request failed", "path", r.URL.Path, "error", err)
	} else {
		log.Debug("Request rejected", "path", r.URL.Path, "error", err)
	}

	message := err.Error()
	if errors.Is(err, skerrors.ErrInternal) {
		message = "internal error"
	}
	writeMessage(w, r, status, skerrors.Category(err), message)
}

func writeMessage(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, r, status, errorResponse{
		Error:     code,
		Message:   message,
		RequestID: logger.GetTraceID(r.Context()),
	})
}

func errRouteNotFound(r *http.Request) error {
	return skerrors.NotFound("no route for %s %s", r.Method, r.URL.Path)
}
