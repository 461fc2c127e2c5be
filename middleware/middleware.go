package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"mongochef/auth"
	"mongochef/errs"
	"mongochef/globals"
	"mongochef/utils"
)

// Authenticate requires a valid "Authorization: Bearer <token>" header and
// stores the caller's e-mail and id in the request context.
func Authenticate(tokens *auth.Tokens) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			header := r.Header.Get("Authorization")
			if header == "" {
				utils.RespondWithErr(w, errs.New(errs.CodeUnauthorized, "Missing token"))
				return
			}
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				utils.RespondWithErr(w, errs.New(errs.CodeUnauthorized, "Invalid token format"))
				return
			}

			claims, err := tokens.Parse(token)
			if err != nil {
				utils.RespondWithErr(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), globals.UserEmailKey, claims.Email)
			ctx = context.WithValue(ctx, globals.UserIDKey, claims.UserID)
			next(w, r.WithContext(ctx), ps)
		}
	}
}

// SecurityHeaders applies a set of recommended HTTP security headers.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		// HSTS (must be on HTTPS)
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		next.ServeHTTP(w, r)
	})
}
