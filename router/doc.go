// Copyright (c) 2025 iRunArt.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the fair-draw API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Draw management (admin, requires X-Admin-Key):

	POST /draws            - Create draw (roster and commitment fixed here)
	GET  /draws/{id}/admin - Get draw details
	POST /draws/{id}/run   - Run the draw with the future signal

Public verification views:

	GET /draws/{slug}        - Roster and commitment hash
	GET /draws/{slug}/result - Outcome snapshot (403 until run)

# Handler Initialization

The router creates handler instances with dependency injection:

	drawHandler := handlers.NewDrawHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
