// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the store, migrates the schema and seeds demo data.

# Opening

	conn, err := db.Open(ctx, db.SQLite, "alumni.db")

SQLite (modernc.org/sqlite, no cgo) is the default and is file backed. Every
connection enables foreign keys, a busy timeout and WAL. Postgres is available
through lib/pq with db.Postgres and a postgres:// URL.

Queries are written with ? placeholders; Rebind converts them to $N for
Postgres.

# Schema

Migrations are embedded SQL files under migrations/<dialect>/, applied in
name order, each at most once. Applied names are recorded in
schema_migrations:

	applied, err := db.Migrate(ctx, conn, db.SQLite)

# Tables

  - alumni: graduate records (contact details, mailing list opt-in)
  - degree: degrees earned per alumni
  - employment: employment history per alumni
  - alumni_membership: alumni association memberships
  - campaign: fundraising campaigns with goal and status
  - contribution: gifts by an alumni to a campaign

# Relationships

	alumni 1──* degree
	alumni 1──* employment
	alumni 1──* alumni_membership
	alumni 1──* contribution *──1 campaign

# Seeding

Seed inserts fixed demo rows in one transaction, only when alumni is empty.
Init runs Migrate then Seed and is safe to call on every start.
*/
package db
