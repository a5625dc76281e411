// Copyright (c) 2025 iRunArt.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Serve Configuration

ParseServeFlags returns a Config struct with all service settings:

	cfg, err := cliparse.ParseServeFlags(os.Args[2:])

Fields:

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - AdminKeySalt: Secret for admin key HMAC (required)
  - DrawSlugSalt: Secret for share slug generation (required)

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ADMIN_KEY_SALT → --admin-salt
	DRAW_SLUG_SALT → --slug-salt

CLI flags take precedence over environment variables, and ParseServeFlags
returns an error when a required value is missing from both.

# Draw Command

ParseDrawArgs handles the one-shot command:

	fair-draw draw candidates.txt "68421.77" --top 5

Two positional arguments (participant file, future signal) plus an optional
winner count (--top / -n, default 3).
*/
package cliparse
