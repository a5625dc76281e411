// Copyright (c) 2025 iRunArt.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides key and identifier generation for the draw service.

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys:

	adminKey := auth.GenerateAdminKey(drawID, salt)
	err := auth.ValidateAdminKey(drawID, adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same draw ID and salt always produce the same key. This allows validation
without storing the key in the database. The admin key gates running a draw;
everything else about a draw is public.

# Share Slugs

Share slugs create URL-friendly identifiers for published draws:

	slug := auth.GenerateShareSlug(drawID, salt)

Slugs are base62 encoded (alphanumeric only) for easy sharing. Like admin
keys, they're deterministic from the draw ID and salt.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
