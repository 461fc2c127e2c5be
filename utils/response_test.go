package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mongochef/errs"
)

func TestRespondWithErr(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
		code    string
	}{
		{"not found", errs.New(errs.CodeNotFound, "Recipe not found"), http.StatusNotFound, "Recipe not found", "NOT_FOUND"},
		{"conflict", errs.New(errs.CodeConflict, "Ingredient already exists"), http.StatusConflict, "Ingredient already exists", "CONFLICT"},
		{"invalid", errs.New(errs.CodeInvalidInput, "No data provided"), http.StatusBadRequest, "No data provided", "INVALID_INPUT"},
		{"plain", errors.New("socket"), http.StatusInternalServerError, "Internal server error", "INTERNAL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			RespondWithErr(rr, tt.err)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body["error"])
			assert.Equal(t, tt.code, body["code"])
		})
	}
}

func TestRespondWithJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondWithJSON(rr, http.StatusOK, M{"status": "ok"})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}
