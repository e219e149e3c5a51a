// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/alumni-portal/auth"
	"github.com/danielhkuo/alumni-portal/middleware"
	"github.com/danielhkuo/alumni-portal/models"
	"github.com/danielhkuo/alumni-portal/store"
)

type AlumniHandler struct {
	store *store.Store
}

func NewAlumniHandler(st *store.Store) *AlumniHandler {
	return &AlumniHandler{store: st}
}

// List handles GET /alumni?search=
func (h *AlumniHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.ListAlumni(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeStoreError(w, r, err, "list alumni")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, list)
}

// GetProfile handles GET /alumni/{id}
// Giving history is included only for admins and the alumni themselves.
func (h *AlumniHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid alumni id")
		return
	}

	sess := auth.FromContext(r.Context())
	profile, err := h.store.GetAlumniProfile(r.Context(), id, sess.CanManage(id))
	if err != nil {
		writeStoreError(w, r, err, "load profile")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, profile)
}

// GetDegrees handles GET /alumni/{id}/degrees
func (h *AlumniHandler) GetDegrees(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid alumni id")
		return
	}

	degrees, err := h.store.DegreesForAlumni(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "list degrees")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, degrees)
}

// GetEmployment handles GET /alumni/{id}/employment
func (h *AlumniHandler) GetEmployment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid alumni id")
		return
	}

	jobs, err := h.store.EmploymentForAlumni(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "list employment")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, jobs)
}

// GetMemberships handles GET /alumni/{id}/memberships
func (h *AlumniHandler) GetMemberships(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid alumni id")
		return
	}

	memberships, err := h.store.MembershipsForAlumni(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "list memberships")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, memberships)
}

// GetContributions handles GET /alumni/{id}/contributions
func (h *AlumniHandler) GetContributions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid alumni id")
		return
	}

	if !auth.FromContext(r.Context()).CanManage(id) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Not allowed to view these contributions")
		return
	}

	gifts, err := h.store.ContributionsForAlumni(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "list contributions")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, gifts)
}

// UpdateContact handles PUT /alumni/{id}/contact
func (h *AlumniHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid alumni id")
		return
	}

	sess := auth.FromContext(r.Context())
	if !sess.CanManage(id) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Not allowed to update this alumni")
		return
	}

	var req models.UpdateContactRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	updated, err := h.store.UpdateContact(r.Context(), id, req)
	if err != nil {
		writeStoreError(w, r, err, "update contact")
		return
	}

	log.Info().Int64("alumni_id", id).Str("by", string(sess.Role)).Msg("contact updated")

	middleware.JSONResponse(w, http.StatusOK, updated)
}
