package models

import "time"

// Draw status constants
const (
	StatusCommitted = "committed"
	StatusDrawn     = "drawn"
)

// Request types

type CreateDrawRequest struct {
	Title        string   `json:"title"`
	Participants []string `json:"participants"`
}

type RunDrawRequest struct {
	Signal string `json:"signal"`
	Top    int    `json:"top"`
}

// Response types

type CreateDrawResponse struct {
	DrawID         string `json:"draw_id"`
	AdminKey       string `json:"admin_key"`
	ShareSlug      string `json:"share_slug"`
	CommitmentHash string `json:"commitment_hash"`
}

// Domain types

type Draw struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Status         string     `json:"status"`
	ShareSlug      string     `json:"share_slug"`
	CommitmentHash string     `json:"commitment_hash"`
	CreatedAt      time.Time  `json:"created_at"`
	DrawnAt        *time.Time `json:"drawn_at,omitempty"`
}

// The roster is public: verifiers need it to recompute the commitment hash.
type DrawWithParticipants struct {
	Draw         Draw     `json:"draw"`
	Participants []string `json:"participants"`
}

// ResultSnapshot is the immutable outcome of a run draw. Seed is the
// 256-bit integer rendered as a decimal string.
type ResultSnapshot struct {
	ID             string    `json:"id"`
	DrawID         string    `json:"draw_id"`
	Signal         string    `json:"signal"`
	Seed           string    `json:"seed"`
	CommitmentHash string    `json:"commitment_hash"`
	Winners        []string  `json:"winners"`
	Shuffled       []string  `json:"shuffled"`
	ComputedAt     time.Time `json:"computed_at"`
}

// ResultPayload is the JSON stored in draw_result.payload.
type ResultPayload struct {
	Winners  []string `json:"winners"`
	Shuffled []string `json:"shuffled"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
