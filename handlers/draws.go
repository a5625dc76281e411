// Copyright (c) 2025 iRunArt.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/irunart/fair-draw/auth"
	"github.com/irunart/fair-draw/cliparse"
	"github.com/irunart/fair-draw/draw"
	"github.com/irunart/fair-draw/middleware"
	"github.com/irunart/fair-draw/models"
	"github.com/irunart/fair-draw/roster"
)

type DrawHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewDrawHandler(db *sql.DB, cfg cliparse.Config) *DrawHandler {
	return &DrawHandler{db: db, cfg: cfg}
}

// CreateDraw handles POST /draws
// The roster and its commitment hash are fixed at creation; the draw is
// born in committed state and the hash is public immediately.
func (h *DrawHandler) CreateDraw(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDrawRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	participants, err := roster.Clean(req.Participants)
	if errors.Is(err, roster.ErrNoParticipants) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "at least one participant is required")
		return
	}
	if err != nil {
		slog.Error("failed to clean roster", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create draw")
		return
	}

	drawID := uuid.NewString()
	adminKey := auth.GenerateAdminKey(drawID, h.cfg.AdminKeySalt)
	shareSlug := auth.GenerateShareSlug(drawID, h.cfg.DrawSlugSalt)
	commitment := draw.CommitmentHash(participants)

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create draw")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO draw (id, title, status, share_slug, commitment_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, drawID, req.Title, models.StatusCommitted, shareSlug, commitment, time.Now())
	if err != nil {
		slog.Error("failed to insert draw", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create draw")
		return
	}

	for i, name := range participants {
		_, err = tx.Exec(`
			INSERT INTO participant (draw_id, position, name)
			VALUES ($1, $2, $3)
		`, drawID, i, name)
		if err != nil {
			slog.Error("failed to insert participant", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create draw")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit draw", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create draw")
		return
	}

	slog.Info("draw created", "draw_id", drawID, "participants", len(participants))

	middleware.JSONResponse(w, http.StatusCreated, models.CreateDrawResponse{
		DrawID:         drawID,
		AdminKey:       adminKey,
		ShareSlug:      shareSlug,
		CommitmentHash: commitment,
	})
}

// GetDraw handles GET /draws/{slug}
// Public commitment view: anyone holding the slug can see the roster and
// the commitment hash and verify them against each other.
func (h *DrawHandler) GetDraw(w http.ResponseWriter, r *http.Request) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	d, participants, ok := h.loadDraw(w, "share_slug", shareSlug)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DrawWithParticipants{
		Draw:         d,
		Participants: participants,
	})
}

// GetDrawAdmin handles GET /draws/{id}/admin
func (h *DrawHandler) GetDrawAdmin(w http.ResponseWriter, r *http.Request) {
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

	d, participants, ok := h.loadDraw(w, "id", drawID)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DrawWithParticipants{
		Draw:         d,
		Participants: participants,
	})
}

// loadDraw fetches a draw and its roster by id or share_slug. It writes the
// error response itself and reports success through the bool.
func (h *DrawHandler) loadDraw(w http.ResponseWriter, column, value string) (models.Draw, []string, bool) {
	var d models.Draw
	query := `
		SELECT id, title, status, share_slug, commitment_hash, created_at, drawn_at
		FROM draw
		WHERE ` + column + ` = $1`
	err := h.db.QueryRow(query, value).Scan(
		&d.ID, &d.Title, &d.Status, &d.ShareSlug,
		&d.CommitmentHash, &d.CreatedAt, &d.DrawnAt,
	)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Draw not found")
		return models.Draw{}, nil, false
	}
	if err != nil {
		slog.Error("failed to query draw", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.Draw{}, nil, false
	}

	participants, err := loadParticipants(h.db, d.ID)
	if err != nil {
		slog.Error("failed to query participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.Draw{}, nil, false
	}

	return d, participants, true
}

func loadParticipants(db *sql.DB, drawID string) ([]string, error) {
	rows, err := db.Query(`
		SELECT name
		FROM participant
		WHERE draw_id = $1
		ORDER BY position
	`, drawID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		participants = append(participants, name)
	}
	return participants, rows.Err()
}
