// Copyright (c) 2025 iRunArt.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateDrawRequest: title, participants
  - RunDrawRequest: signal, top

# Response Types

Types for JSON responses:

  - CreateDrawResponse: draw_id, admin_key, share_slug, commitment_hash
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Draw: draw metadata and lifecycle state
  - DrawWithParticipants: draw plus its public roster
  - ResultSnapshot: immutable outcome record (signal, seed, winners,
    full shuffled order)
  - ResultPayload: JSON body persisted in draw_result.payload

# Constants

Status values:

	StatusCommitted = "committed"
	StatusDrawn     = "drawn"

A draw is created directly in committed state (its roster and commitment
hash are fixed at creation) and moves to drawn exactly once.
*/
package models
