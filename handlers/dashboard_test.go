// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/alumni-portal/db"
	"github.com/danielhkuo/alumni-portal/models"
	"github.com/danielhkuo/alumni-portal/store"
	"github.com/danielhkuo/alumni-portal/testutil"
)

func TestDashboardStats(t *testing.T) {
	handler := NewDashboardHandler(setupStore(t))

	req := httptest.NewRequest("GET", "/dashboard/stats", nil)
	w := httptest.NewRecorder()
	handler.Stats(w, as(req, adminSession))

	testutil.AssertStatus(t, w, http.StatusOK)
	var stats models.SummaryStats
	testutil.AssertJSON(t, w, &stats)

	want := models.SummaryStats{TotalAlumni: 5, TotalEmployers: 5, TotalCampaigns: 2, TotalContributions: 3250}
	if stats != want {
		t.Errorf("Expected %+v, got %+v", want, stats)
	}
}

func TestDashboardStats_EmptyStore(t *testing.T) {
	handler := NewDashboardHandler(store.New(testutil.SetupEmptyDB(t), db.SQLite))

	req := httptest.NewRequest("GET", "/dashboard/stats", nil)
	w := httptest.NewRecorder()
	handler.Stats(w, as(req, adminSession))

	testutil.AssertStatus(t, w, http.StatusOK)
	var stats models.SummaryStats
	testutil.AssertJSON(t, w, &stats)
	if stats != (models.SummaryStats{}) {
		t.Errorf("Expected all zeros, got %+v", stats)
	}
}

func TestDashboardEmployers(t *testing.T) {
	handler := NewDashboardHandler(setupStore(t))

	req := httptest.NewRequest("GET", "/dashboard/employers", nil)
	w := httptest.NewRecorder()
	handler.Employers(w, as(req, adminSession))

	testutil.AssertStatus(t, w, http.StatusOK)
	var summary []models.EmployerSummary
	testutil.AssertJSON(t, w, &summary)
	if len(summary) != 5 {
		t.Fatalf("Expected 5 employers, got %d", len(summary))
	}
	for _, row := range summary {
		if row.NumAlumni != 1 {
			t.Errorf("Expected one alumni at %s, got %d", *row.EmployerName, row.NumAlumni)
		}
	}
}

func TestDashboardContributions(t *testing.T) {
	handler := NewDashboardHandler(setupStore(t))

	req := httptest.NewRequest("GET", "/dashboard/contributions", nil)
	w := httptest.NewRecorder()
	handler.Contributions(w, as(req, adminSession))

	testutil.AssertStatus(t, w, http.StatusOK)
	var all []models.ContributionListing
	testutil.AssertJSON(t, w, &all)
	if len(all) != 3 {
		t.Fatalf("Expected 3 contributions, got %d", len(all))
	}
	if all[0].ID != 9003 || all[0].LastName != "Patel" {
		t.Errorf("Expected newest gift from Patel first, got %+v", all[0])
	}
}

func TestHealth(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewHealthHandler(store.New(conn, db.SQLite), testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.Health(w, httptest.NewRequest("GET", "/health", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.HealthResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Status != "ok" || resp.Database != "sqlite" {
		t.Errorf("Unexpected health response: %+v", resp)
	}

	conn.Close()
	w = httptest.NewRecorder()
	handler.Health(w, httptest.NewRequest("GET", "/health", nil))
	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)
}
