// Copyright (c) 2025 iRunArt.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/irunart/fair-draw/auth"
	"github.com/irunart/fair-draw/cliparse"
	"github.com/irunart/fair-draw/draw"
	"github.com/irunart/fair-draw/middleware"
	"github.com/irunart/fair-draw/models"
)

type ResultsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg}
}

// RunDraw handles POST /draws/{id}/run
// Runs the shuffle exactly once, with the signal supplied by the organizer.
// The outcome snapshot is immutable; a second run is a 409.
func (h *ResultsHandler) RunDraw(w http.ResponseWriter, r *http.Request) {
	drawID := r.PathValue("id")
	if drawID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "draw_id is required")
		return
	}

	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(drawID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	var req models.RunDrawRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Top <= 0 {
		req.Top = 3
	}

	var status string
	err := h.db.QueryRow("SELECT status FROM draw WHERE id = $1", drawID).Scan(&status)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Draw not found")
		return
	}
	if err != nil {
		slog.Error("failed to query draw", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if status == models.StatusDrawn {
		middleware.ErrorResponse(w, http.StatusConflict, "Draw has already been run")
		return
	}

	participants, err := loadParticipants(h.db, drawID)
	if err != nil {
		slog.Error("failed to query participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	result, err := draw.FairShuffle(participants, req.Signal)
	if errors.Is(err, draw.ErrInvalidSalt) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "signal must not be empty or whitespace")
		return
	}
	if err != nil {
		slog.Error("shuffle failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to run draw")
		return
	}

	resultID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate result ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to run draw")
		return
	}

	payload := models.ResultPayload{
		Winners:  result.Winners(req.Top),
		Shuffled: result.Shuffled,
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to marshal result payload", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to run draw")
		return
	}

	now := time.Now()

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to run draw")
		return
	}
	defer tx.Rollback()

	// Guard the transition in SQL before touching draw_result, so a racing
	// second run loses here with a 409 instead of tripping the snapshot's
	// unique constraint.
	res, err := tx.Exec(`
		UPDATE draw SET status = $1, drawn_at = $2
		WHERE id = $3 AND status = $4
	`, models.StatusDrawn, now, drawID, models.StatusCommitted)
	if err != nil {
		slog.Error("failed to update draw status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to run draw")
		return
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		middleware.ErrorResponse(w, http.StatusConflict, "Draw has already been run")
		return
	}

	_, err = tx.Exec(`
		INSERT INTO draw_result (id, draw_id, signal, seed, computed_at, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, resultID, drawID, req.Signal, result.Seed.String(), now, string(payloadJSON))
	if err != nil {
		slog.Error("failed to insert result", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to run draw")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit result", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to run draw")
		return
	}

	slog.Info("draw run", "draw_id", drawID, "signal", req.Signal, "winners", len(payload.Winners))

	middleware.JSONResponse(w, http.StatusOK, models.ResultSnapshot{
		ID:             resultID,
		DrawID:         drawID,
		Signal:         req.Signal,
		Seed:           result.Seed.String(),
		CommitmentHash: result.CommitmentHash,
		Winners:        payload.Winners,
		Shuffled:       payload.Shuffled,
		ComputedAt:     now,
	})
}

// GetResult handles GET /draws/{slug}/result
// Returns 403 while the draw has not been run; afterwards the snapshot
// carries everything a verifier needs to recompute the outcome.
func (h *ResultsHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	var drawID, status, commitment string
	err := h.db.QueryRow(`
		SELECT id, status, commitment_hash
		FROM draw
		WHERE share_slug = $1
	`, shareSlug).Scan(&drawID, &status, &commitment)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Draw not found")
		return
	}
	if err != nil {
		slog.Error("failed to query draw", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if status != models.StatusDrawn {
		middleware.ErrorResponse(w, http.StatusForbidden, "Draw has not been run yet")
		return
	}

	var snapshot models.ResultSnapshot
	var payloadJSON []byte
	err = h.db.QueryRow(`
		SELECT id, draw_id, signal, seed, computed_at, payload
		FROM draw_result
		WHERE draw_id = $1
	`, drawID).Scan(
		&snapshot.ID, &snapshot.DrawID, &snapshot.Signal,
		&snapshot.Seed, &snapshot.ComputedAt, &payloadJSON,
	)

	if err != nil {
		slog.Error("failed to query result", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var payload models.ResultPayload
	if err := json.Unmarshal(payloadJSON, &payload); err != nil {
		slog.Error("failed to parse result payload", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to parse result")
		return
	}

	snapshot.CommitmentHash = commitment
	snapshot.Winners = payload.Winners
	snapshot.Shuffled = payload.Shuffled

	middleware.JSONResponse(w, http.StatusOK, snapshot)
}
