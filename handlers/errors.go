// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/alumni-portal/middleware"
	"github.com/danielhkuo/alumni-portal/store"
	"github.com/danielhkuo/alumni-portal/validation"
)

var errInvalidID = errors.New("invalid id")

// pathID reads a positive integer path value
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// writeStoreError maps a store or validation error to its HTTP response.
// Anything unrecognised is logged and reported as a 500 for action.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, validation.ErrInvalid):
		middleware.FieldErrorResponse(w, http.StatusBadRequest, "Invalid input", validation.Fields(err))
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrReferenceViolation):
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Error().Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Msg("failed to " + action)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to "+action)
	}
}
