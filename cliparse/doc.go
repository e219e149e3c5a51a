// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Sources

Values are resolved in this order, later sources winning:

 1. struct defaults (envDefault tags)
 2. a .env file in the working directory, if present
 3. process environment variables
 4. CLI flags

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite file path or PostgreSQL URL (default: alumni.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - SessionSecret: Secret for access key HMAC (required)
  - LogLevel, LogFormat: zerolog settings (default: info, console)
  - SkipSeed: do not insert the demo rows

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-secret       Session secret
	-log-level    Log level
	-log-format   console or json
	-no-seed      Skip demo data
	-issue-token  Print a key for "admin" or an alumni id, then exit

# Environment Variables

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	SESSION_SECRET → -secret
	LOG_LEVEL      → -log-level
	LOG_FORMAT     → -log-format
	SKIP_SEED      → -no-seed
*/
package cliparse
