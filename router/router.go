// Copyright (c) 2025 iRunArt.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/irunart/fair-draw/cliparse"
	"github.com/irunart/fair-draw/handlers"
	"github.com/irunart/fair-draw/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	drawHandler := handlers.NewDrawHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Draw management (admin operations)
	mux.HandleFunc("POST /draws", middleware.WithLogging(drawHandler.CreateDraw))
	mux.HandleFunc("GET /draws/{id}/admin", middleware.WithLogging(drawHandler.GetDrawAdmin))
	mux.HandleFunc("POST /draws/{id}/run", middleware.WithLogging(resultsHandler.RunDraw))

	// Public commitment and result views
	mux.HandleFunc("GET /draws/{slug}", middleware.WithLogging(drawHandler.GetDraw))
	mux.HandleFunc("GET /draws/{slug}/result", middleware.WithLogging(resultsHandler.GetResult))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fair-draw API v1"))
	})

	return mux
}
