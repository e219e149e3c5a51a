// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the alumni portal API.

# Route Registration

NewRouter returns the server handler, with every route behind CORS, request
ids, and session resolution:

	handler := router.NewRouter(st, cfg)

NewMux returns the bare ServeMux without the outer middleware.

# Endpoints

Health:

	GET /health

Admin dashboard (admin only):

	GET /dashboard/stats         - Summary totals
	GET /dashboard/employers     - Alumni per employer
	GET /dashboard/contributions - Every contribution

Directory (any role):

	GET /alumni?search=            - Alumni list, filtered by last name or major
	GET /alumni/{id}               - Profile
	GET /alumni/{id}/degrees       - Degrees
	GET /alumni/{id}/employment    - Employment history
	GET /alumni/{id}/memberships   - Association memberships

Self service (admin or the alumni themselves):

	GET /alumni/{id}/contributions - Giving history
	PUT /alumni/{id}/contact       - Update contact details

Campaigns:

	GET  /campaigns                    - Campaigns with amount raised
	POST /campaigns/{id}/contributions - Contribute (alumni only)
*/
package router
