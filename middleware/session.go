// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"

	"github.com/danielhkuo/alumni-portal/auth"
)

// WithSession resolves request credentials into an auth.Session on the
// request context. Requests without credentials run as students; bad
// credentials get 401.
func WithSession(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := auth.Resolve(
				r.Header.Get(auth.HeaderAdminKey),
				r.Header.Get(auth.HeaderAlumniID),
				r.Header.Get(auth.HeaderAlumniToken),
				secret,
			)
			if err != nil {
				ErrorResponse(w, http.StatusUnauthorized, err.Error())
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), sess)))
		})
	}
}

// RequireAdmin rejects non-admin sessions with 403
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !auth.FromContext(r.Context()).IsAdmin() {
			ErrorResponse(w, http.StatusForbidden, "Admin access required")
			return
		}
		next(w, r)
	}
}
