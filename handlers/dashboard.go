// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/alumni-portal/middleware"
	"github.com/danielhkuo/alumni-portal/store"
)

// DashboardHandler serves the admin reports. Routes are expected to be
// wrapped in middleware.RequireAdmin.
type DashboardHandler struct {
	store *store.Store
}

func NewDashboardHandler(st *store.Store) *DashboardHandler {
	return &DashboardHandler{store: st}
}

// Stats handles GET /dashboard/stats
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.SummaryStats(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "compute stats")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, stats)
}

// Employers handles GET /dashboard/employers
func (h *DashboardHandler) Employers(w http.ResponseWriter, r *http.Request) {
	summary, err := h.store.EmployerSummary(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "summarize employers")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, summary)
}

// Contributions handles GET /dashboard/contributions
func (h *DashboardHandler) Contributions(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.AllContributions(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "list contributions")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, all)
}
