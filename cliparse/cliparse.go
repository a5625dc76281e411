// Copyright (c) 2025 iRunArt.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	AdminKeySalt string
	DrawSlugSalt string
}

// DrawConfig holds the arguments of the one-shot draw command.
type DrawConfig struct {
	File   string
	Signal string
	Top    int
}

// ParseServeFlags validates serve-mode flags and applies env fallbacks
func ParseServeFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("fair-draw serve", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")
	fs.StringVar(&cfg.DrawSlugSalt, "slug-salt", "", "Draw slug salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	// Secrets - MUST be provided
	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}

	if cfg.DrawSlugSalt == "" {
		cfg.DrawSlugSalt = os.Getenv("DRAW_SLUG_SALT")
	}
	if cfg.DrawSlugSalt == "" {
		return Config{}, errors.New("DRAW_SLUG_SALT required")
	}

	return cfg, nil
}

// ParseDrawArgs parses the positional FILE and SIGNAL arguments and the
// optional winner count of the one-shot draw command. Flags may appear
// before, between, or after the positionals.
func ParseDrawArgs(args []string) (DrawConfig, error) {
	var cfg DrawConfig

	fs := flag.NewFlagSet("fair-draw draw", flag.ContinueOnError)
	fs.IntVar(&cfg.Top, "top", 3, "Number of winners to display")
	fs.IntVar(&cfg.Top, "n", 3, "Number of winners to display (shorthand)")

	if err := fs.Parse(args); err != nil {
		return DrawConfig{}, err
	}

	// flag.Parse stops at the first positional argument, so collect
	// positionals one at a time and re-parse what follows each; otherwise
	// a trailing --top would be silently ignored.
	var positionals []string
	rest := fs.Args()
	for len(rest) > 0 {
		positionals = append(positionals, rest[0])
		if err := fs.Parse(rest[1:]); err != nil {
			return DrawConfig{}, err
		}
		rest = fs.Args()
	}

	if len(positionals) != 2 {
		return DrawConfig{}, errors.New("usage: fair-draw draw FILE SIGNAL [--top N]")
	}
	cfg.File = positionals[0]
	cfg.Signal = positionals[1]

	if cfg.Top < 1 {
		return DrawConfig{}, errors.New("winner count must be at least 1")
	}

	return cfg, nil
}
