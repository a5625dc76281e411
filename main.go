// Copyright (c) 2025 iRunArt.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/irunart/fair-draw/cliparse"
	"github.com/irunart/fair-draw/db"
	"github.com/irunart/fair-draw/draw"
	"github.com/irunart/fair-draw/middleware"
	"github.com/irunart/fair-draw/roster"
	"github.com/irunart/fair-draw/router"
)

func main() {
	// Local dev convenience; a missing .env is fine
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: fair-draw draw FILE SIGNAL [--top N] | fair-draw serve [flags]")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "draw":
		runDraw(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (want draw or serve)\n", os.Args[1])
		os.Exit(1)
	}
}

// runDraw is the one-shot CLI: load a roster file, shuffle against the
// signal, print the commitment hash, seed, and top winners.
func runDraw(args []string) {
	cfg, err := cliparse.ParseDrawArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	participants, err := roster.Load(cfg.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d participants from '%s'.\n", len(participants), cfg.File)

	result, err := draw.FairShuffle(participants, cfg.Signal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("--- Fair Lucky Draw Results ---")
	fmt.Printf("Future Signal: '%s'\n", cfg.Signal)
	fmt.Printf("Total Participants: %d\n", len(participants))
	fmt.Printf("Participant Hash: %s\n", result.CommitmentHash)
	fmt.Printf("Seed:             %s\n", result.Seed)
	fmt.Println("------------------------------")

	fmt.Printf("Top %d Winners:\n", cfg.Top)
	for i, winner := range result.Winners(cfg.Top) {
		fmt.Printf("%d. %s\n", i+1, winner)
	}
	fmt.Println("------------------------------")
}

// runServe starts the draw service.
func runServe(args []string) {
	cfg, err := cliparse.ParseServeFlags(args)
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}

	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	mux := router.NewRouter(dbConn, cfg)

	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
