// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the alumni portal API.

# Handler Types

Each handler is a struct over the store:

  - AlumniHandler: directory, profiles, related records, contact updates
  - CampaignHandler: campaign list and contribution submission
  - DashboardHandler: admin statistics and reports
  - HealthHandler: liveness check with a store ping

Handlers are created via constructor functions:

	alumniHandler := handlers.NewAlumniHandler(st)
	healthHandler := handlers.NewHealthHandler(st, cfg)

# Sessions

Handlers read the caller from auth.FromContext. Students browse the
directory; alumni may view their own giving, update their own contact
details, and contribute; admins may view and update any record.

	GET  /alumni?search=              → List
	GET  /alumni/{id}                 → GetProfile (giving only for admin or self)
	GET  /alumni/{id}/contributions   → GetContributions (admin or self)
	PUT  /alumni/{id}/contact         → UpdateContact (admin or self)
	POST /campaigns/{id}/contributions → Contribute (alumni only, donor is the session)

# Errors

Store and validation errors map to responses in one place:

  - invalid input: 400 with per-field errors
  - missing record: 404
  - contribution for a missing alumni or campaign: 422
  - anything else: logged, 500
*/
package handlers
