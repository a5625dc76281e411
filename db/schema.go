// Copyright (c) 2025 iRunArt.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// The SQL stays inside the sqlite/postgres intersection: no NOW(), no JSONB,
// timestamps supplied by the application, result payloads as JSON text.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Draws
CREATE TABLE IF NOT EXISTS draw (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'committed' CHECK (status IN ('committed', 'drawn')),
    share_slug TEXT UNIQUE,
    commitment_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    drawn_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_draw_share_slug ON draw(share_slug);
CREATE INDEX IF NOT EXISTS idx_draw_status ON draw(status);

-- Participants (position preserves the order the roster arrived in;
-- the core canonicalizes independently, so order is informational only)
CREATE TABLE IF NOT EXISTS participant (
    draw_id TEXT NOT NULL REFERENCES draw(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    PRIMARY KEY (draw_id, position)
);

CREATE INDEX IF NOT EXISTS idx_participant_draw_id ON participant(draw_id);

-- Result Snapshots (one per draw; seed stored as a decimal string)
CREATE TABLE IF NOT EXISTS draw_result (
    id TEXT PRIMARY KEY,
    draw_id TEXT NOT NULL UNIQUE REFERENCES draw(id) ON DELETE CASCADE,
    signal TEXT NOT NULL,
    seed TEXT NOT NULL,
    computed_at TIMESTAMP NOT NULL,
    payload TEXT NOT NULL
);
`
