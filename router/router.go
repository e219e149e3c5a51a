// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/alumni-portal/cliparse"
	"github.com/danielhkuo/alumni-portal/handlers"
	"github.com/danielhkuo/alumni-portal/middleware"
	"github.com/danielhkuo/alumni-portal/store"
)

// Banner is the body of GET /
const Banner = "alumni-portal API v1"

// NewMux registers every route on a fresh ServeMux
func NewMux(st *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(st, cfg)
	alumniHandler := handlers.NewAlumniHandler(st)
	campaignHandler := handlers.NewCampaignHandler(st)
	dashboardHandler := handlers.NewDashboardHandler(st)

	// Health check
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Admin dashboard
	mux.HandleFunc("GET /dashboard/stats", middleware.WithLogging(middleware.RequireAdmin(dashboardHandler.Stats)))
	mux.HandleFunc("GET /dashboard/employers", middleware.WithLogging(middleware.RequireAdmin(dashboardHandler.Employers)))
	mux.HandleFunc("GET /dashboard/contributions", middleware.WithLogging(middleware.RequireAdmin(dashboardHandler.Contributions)))

	// Alumni directory and profiles
	mux.HandleFunc("GET /alumni", middleware.WithLogging(alumniHandler.List))
	mux.HandleFunc("GET /alumni/{id}", middleware.WithLogging(alumniHandler.GetProfile))
	mux.HandleFunc("GET /alumni/{id}/degrees", middleware.WithLogging(alumniHandler.GetDegrees))
	mux.HandleFunc("GET /alumni/{id}/employment", middleware.WithLogging(alumniHandler.GetEmployment))
	mux.HandleFunc("GET /alumni/{id}/memberships", middleware.WithLogging(alumniHandler.GetMemberships))
	mux.HandleFunc("GET /alumni/{id}/contributions", middleware.WithLogging(alumniHandler.GetContributions))
	mux.HandleFunc("PUT /alumni/{id}/contact", middleware.WithLogging(alumniHandler.UpdateContact))

	// Campaigns and giving
	mux.HandleFunc("GET /campaigns", middleware.WithLogging(campaignHandler.List))
	mux.HandleFunc("POST /campaigns/{id}/contributions", middleware.WithLogging(campaignHandler.Contribute))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Banner))
	})

	return mux
}

// NewRouter returns the full server handler: routes behind CORS, request ids
// and session resolution.
func NewRouter(st *store.Store, cfg cliparse.Config) http.Handler {
	mux := NewMux(st, cfg)
	return middleware.CORS(middleware.RequestID(middleware.WithSession(cfg.SessionSecret)(mux)))
}
