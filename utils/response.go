package utils

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"mongochef/errs"
)

// M is a shorthand for ad-hoc JSON objects.
type M map[string]any

// RespondWithError sends {"error": msg} with the given status.
func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, M{"error": msg})
}

// RespondWithErr maps a domain error to its status code and message.
func RespondWithErr(w http.ResponseWriter, err error) {
	status := errs.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
	}
	RespondWithJSON(w, status, M{
		"error": errs.MessageOf(err),
		"code":  errs.CodeOf(err),
	})
}

// RespondWithJSON sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode response", "error", err)
	}
}
