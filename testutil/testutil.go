// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/danielhkuo/alumni-portal/auth"
	"github.com/danielhkuo/alumni-portal/cliparse"
	"github.com/danielhkuo/alumni-portal/db"
)

// TestSecret signs admin and alumni keys in tests
const TestSecret = "test-session-secret"

// SetupTestDB opens a file-backed SQLite store in a temp dir, migrated and
// loaded with the demo rows
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn := SetupEmptyDB(t)
	if _, err := db.Seed(context.Background(), conn, db.SQLite); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}
	return conn
}

// SetupEmptyDB opens a migrated SQLite store with no rows
func SetupEmptyDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), db.SQLite, filepath.Join(t.TempDir(), "alumni.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if _, err := db.Migrate(context.Background(), conn, db.SQLite); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   "alumni-test.db",
		DatabaseType:  cliparse.DatabaseSQLite,
		SessionSecret: TestSecret,
		LogLevel:      "error",
		LogFormat:     "json",
	}
}

// AddTestAlumni inserts a bare alumni row with the mailing list on
func AddTestAlumni(t *testing.T, conn *sql.DB, id int64, first, last, email string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO alumni (alumniid, firstname, lastname, primaryemail, mailing_list)
		VALUES (?, ?, ?, ?, 'Yes')
	`, id, first, last, email)
	if err != nil {
		t.Fatalf("Failed to create test alumni: %v", err)
	}
}

// AddTestCampaign inserts a campaign row
func AddTestCampaign(t *testing.T, conn *sql.DB, id int64, name string, goal float64, status string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO campaign (campaignid, campaignname, goalamount, status)
		VALUES (?, ?, ?, ?)
	`, id, name, goal, status)
	if err != nil {
		t.Fatalf("Failed to create test campaign: %v", err)
	}
}

// AdminHeaders returns the headers that grant the admin role
func AdminHeaders(cfg cliparse.Config) map[string]string {
	return map[string]string{
		auth.HeaderAdminKey: auth.GenerateAdminKey(cfg.SessionSecret),
	}
}

// AlumniHeaders returns the headers that sign a request in as alumniID
func AlumniHeaders(cfg cliparse.Config, alumniID int64) map[string]string {
	return map[string]string{
		auth.HeaderAlumniID:    strconv.FormatInt(alumniID, 10),
		auth.HeaderAlumniToken: auth.GenerateAlumniToken(alumniID, cfg.SessionSecret),
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
