// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/alumni-portal/cliparse"
	"github.com/danielhkuo/alumni-portal/middleware"
	"github.com/danielhkuo/alumni-portal/models"
	"github.com/danielhkuo/alumni-portal/store"
)

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewHealthHandler(st *store.Store, cfg cliparse.Config) *HealthHandler {
	return &HealthHandler{store: st, cfg: cfg}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("health check failed")
		middleware.JSONResponse(w, http.StatusServiceUnavailable, models.HealthResponse{
			Status:   "unavailable",
			Database: h.cfg.DatabaseType,
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:   "ok",
		Database: h.cfg.DatabaseType,
	})
}
