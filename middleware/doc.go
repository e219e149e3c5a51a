// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Each request produces one zerolog entry with method, path, status, ip,
duration_ms, role, and request_id. 5xx responses log at error level, 4xx at
warn.

# Request IDs

RequestID reuses the caller's X-Request-ID or generates a UUID, stores it on
the context, and echoes it in the response:

	rid := middleware.RequestIDFromContext(r.Context())

# Sessions

WithSession resolves X-Admin-Key or X-Alumni-ID/X-Alumni-Token into an
auth.Session on the request context. Requests without credentials run as
students; credentials that fail to verify get 401. RequireAdmin wraps a
handler so only admins reach it (403 otherwise).

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Alumni not found")
	middleware.FieldErrorResponse(w, http.StatusBadRequest, "Invalid input", fields)

ParseJSONBody decodes a request body, rejecting unknown fields, trailing data,
and bodies over MaxBodyBytes.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For, then X-Real-IP, then RemoteAddr.
*/
package middleware
