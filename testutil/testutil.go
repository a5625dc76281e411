// Copyright (c) 2025 iRunArt.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/irunart/fair-draw/auth"
	"github.com/irunart/fair-draw/cliparse"
	"github.com/irunart/fair-draw/db"
	"github.com/irunart/fair-draw/draw"
	"github.com/irunart/fair-draw/models"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema.
// Each test gets its own database; nothing leaks between tests.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// A :memory: database exists per connection; keep the pool at one so
	// every query sees the same database.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		AdminKeySalt: "test-admin-salt",
		DrawSlugSalt: "test-slug-salt",
	}
}

// CreateTestDraw inserts a committed draw with the given roster and returns
// its ID, admin key, and share slug.
func CreateTestDraw(t *testing.T, conn *sql.DB, cfg cliparse.Config, title string, participants []string) (drawID, adminKey, shareSlug string) {
	t.Helper()

	drawID = uuid.NewString()
	adminKey = auth.GenerateAdminKey(drawID, cfg.AdminKeySalt)
	shareSlug = auth.GenerateShareSlug(drawID, cfg.DrawSlugSalt)
	commitment := draw.CommitmentHash(participants)

	_, err := conn.Exec(`
		INSERT INTO draw (id, title, status, share_slug, commitment_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, drawID, title, models.StatusCommitted, shareSlug, commitment, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test draw: %v", err)
	}

	for i, name := range participants {
		_, err := conn.Exec(`
			INSERT INTO participant (draw_id, position, name)
			VALUES ($1, $2, $3)
		`, drawID, i, name)
		if err != nil {
			t.Fatalf("Failed to create test participant: %v", err)
		}
	}

	return drawID, adminKey, shareSlug
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
