// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the alumni portal API server.

The portal serves a university alumni office: admins see giving and
employment statistics, students browse the alumni directory, and alumni
keep their contact details current and record contributions to campaigns.

# Starting the Server

A session secret is always required. Everything else has a default:

	SESSION_SECRET=change-me go run .

This opens (or creates) alumni.db, applies migrations, loads the demo rows on
first start, and listens on port 3318. To use PostgreSQL instead:

	go run . -t postgres -d "postgres://..." -secret change-me

# Configuration

Settings come from flags, then the environment, then a .env file:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): SQLite path or PostgreSQL URL (default: alumni.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SESSION_SECRET (-secret): Secret for admin keys and alumni tokens
  - LOG_LEVEL (-log-level), LOG_FORMAT (-log-format): zerolog output
  - SKIP_SEED (-no-seed): Do not insert demo rows

# Access Keys

Print the admin key or an alumni token and exit:

	go run . -issue-token admin
	go run . -issue-token 1001

# Architecture

  - handlers: HTTP request handlers (alumni, campaigns, dashboard, health)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request ids, sessions, logging, JSON helpers
  - store: Queries, aggregates, and the two write operations
  - db: Connection, migrations, and demo seed
  - validation: Input rules and field errors
  - models: Request/response and domain types
  - auth: Roles, sessions, and HMAC keys
  - logging: zerolog setup
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
