package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/xilidan/interview/pkg/json"
	"github.com/xilidan/interview/pkg/jwt"
)

var errAccessDenied = errors.New("access denied")

// Auth requires a bearer token signed with secret. An empty secret leaves
// the routes open.
func Auth(secret string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := jwt.ParseTokenFromHeader(r)
			if err != nil {
				log.Debug("missing bearer token", slog.String("path", r.URL.Path))
				json.WriteError(w, http.StatusForbidden, errAccessDenied)
				return
			}

			userID, err := jwt.ParseUserID(r.Context(), token, secret)
			if err != nil {
				log.Debug("rejected token", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
				json.WriteError(w, http.StatusForbidden, errAccessDenied)
				return
			}

			next.ServeHTTP(w, r.WithContext(jwt.WithUserID(r.Context(), userID)))
		})
	}
}
