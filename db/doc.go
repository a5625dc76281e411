// Copyright (c) 2025 iRunArt.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - draw: Draw metadata, lifecycle state, and commitment hash
  - participant: The public roster, one row per entry, input order kept
  - draw_result: Immutable outcome snapshot (signal, seed, payload), at
    most one per draw

# Relationships

	draw 1──* participant
	draw 1──1 draw_result

All foreign keys use ON DELETE CASCADE.

# Portability

Statements stay inside the sqlite/postgres intersection, matching the two
drivers the service supports: application-supplied timestamps instead of
NOW(), JSON payloads as TEXT instead of JSONB, and $N placeholders (both
drivers bind them positionally).
*/
package db
