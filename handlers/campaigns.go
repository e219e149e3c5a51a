// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/alumni-portal/auth"
	"github.com/danielhkuo/alumni-portal/middleware"
	"github.com/danielhkuo/alumni-portal/models"
	"github.com/danielhkuo/alumni-portal/store"
)

type CampaignHandler struct {
	store *store.Store
	now   func() time.Time
}

func NewCampaignHandler(st *store.Store) *CampaignHandler {
	return &CampaignHandler{store: st, now: time.Now}
}

// List handles GET /campaigns
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.store.ListCampaigns(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "list campaigns")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, campaigns)
}

// Contribute handles POST /campaigns/{id}/contributions
// The donor is the signed-in alumni; an empty date means today.
func (h *CampaignHandler) Contribute(w http.ResponseWriter, r *http.Request) {
	campaignID, err := pathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}

	sess := auth.FromContext(r.Context())
	if sess.Role != auth.RoleAlumni {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only alumni can contribute")
		return
	}

	var req models.CreateContributionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Date == "" {
		req.Date = h.now().Format(models.DateLayout)
	}

	c, err := h.store.CreateContribution(r.Context(), models.NewContribution{
		AlumniID:   sess.AlumniID,
		CampaignID: campaignID,
		Amount:     req.Amount,
		Date:       req.Date,
	})
	if err != nil {
		writeStoreError(w, r, err, "record contribution")
		return
	}

	log.Info().
		Int64("contribution_id", c.ID).
		Int64("alumni_id", c.AlumniID).
		Int64("campaign_id", c.CampaignID).
		Float64("amount", c.Amount).
		Msg("contribution recorded")

	middleware.JSONResponse(w, http.StatusCreated, models.CreateContributionResponse{
		Contribution: c,
		Message:      "Thank you for your contribution",
	})
}
