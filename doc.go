// Copyright (c) 2025 iRunArt.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the fair-draw tool and API server.

fair-draw conducts publicly-verifiable lucky draws: the participant list is
committed to with a SHA-256 hash before a future public signal (a stock
close, a block hash) exists, then the signal deterministically seeds the
shuffle. Anyone can re-run the draw afterwards and check both the commitment
and the outcome.

# One-shot draw

	fair-draw draw candidates.txt "68421.77" --top 5

Reads one participant per line, prints the commitment hash, the seed, and
the top winners. Exits 1 with a one-line error for a missing file or an
empty signal.

# Server

	DATABASE_URL=draws.db ADMIN_KEY_SALT=... DRAW_SLUG_SALT=... fair-draw serve

Or with flags:

	fair-draw serve -p 3318 -d "postgres://..." -t postgres

Organizers create a draw (fixing its roster and commitment hash), publish
the share slug, and later run the draw once the signal is known. Results
stay sealed until then.

# Configuration

Required for serve:

  - DATABASE_URL (-d): sqlite path or PostgreSQL connection string
  - ADMIN_KEY_SALT (--admin-salt): Secret for admin key HMAC
  - DRAW_SLUG_SALT (--slug-salt): Secret for share slug generation

Optional:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - draw: the deterministic core (canonicalize, commit, seed, shuffle)
  - roster: participant list loading
  - handlers: HTTP request handlers (draws, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Admin key and slug generation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
