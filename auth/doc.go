// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth resolves who is making a request.

# Roles

Every request runs as one of three roles:

	auth.RoleAdmin    // dashboards and every alumni record
	auth.RoleAlumni   // own contact details and contributions
	auth.RoleStudent  // read-only directory, the default

# Keys

Admin keys and alumni tokens use HMAC-SHA256 over the deployment's
SESSION_SECRET, so nothing has to be stored:

	key := auth.GenerateAdminKey(secret)
	err := auth.ValidateAdminKey(key, secret)

	token := auth.GenerateAlumniToken(1001, secret)
	err := auth.ValidateAlumniToken(1001, token, secret)

Keys are URL-safe base64 encoded without padding. Clients send them in the
X-Admin-Key header, or X-Alumni-ID together with X-Alumni-Token.

# Sessions

Resolve maps those headers to a Session, which middleware stores on the
request context:

	ctx = auth.WithSession(ctx, sess)
	sess := auth.FromContext(ctx)

A context without a session reads as a student.
*/
package auth
