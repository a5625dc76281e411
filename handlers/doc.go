// Copyright (c) 2025 iRunArt.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the fair-draw API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - DrawHandler: Draw creation and commitment views
  - ResultsHandler: Running a draw and result retrieval

Handlers are created via constructor functions that accept *sql.DB and Config:

	drawHandler := handlers.NewDrawHandler(db, cfg)

# Draw Lifecycle

Draws have two states: committed → drawn

	POST /draws           → CreateDraw (roster + commitment fixed, returns admin_key)
	GET  /draws/{slug}    → GetDraw (public commitment view)
	GET  /draws/{id}/admin → GetDrawAdmin
	POST /draws/{id}/run  → RunDraw (admin, once, needs the future signal)
	GET  /draws/{slug}/result → GetResult (sealed until drawn)

Admin operations require the X-Admin-Key header. The commitment hash is
public from creation so organizers can publish it before the signal exists;
the result stays sealed (403) until the draw has actually been run.

# Determinism

RunDraw delegates to the draw package; the snapshot it persists (signal,
seed, shuffled order) is exactly what an independent verifier needs to
recompute the outcome against the published commitment.
*/
package handlers
