package utils

import (
	"net/http"

	"mongochef/globals"
)

// GetUserEmailFromRequest returns the e-mail stored by the authentication
// middleware, or "" for anonymous requests.
func GetUserEmailFromRequest(r *http.Request) string {
	email, _ := r.Context().Value(globals.UserEmailKey).(string)
	return email
}

func GetUserIDFromRequest(r *http.Request) string {
	id, _ := r.Context().Value(globals.UserIDKey).(string)
	return id
}

func GetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(globals.RequestIDKey).(string)
	return id
}
