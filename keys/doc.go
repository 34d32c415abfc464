// Copyright (c) 2026 Abjago.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package keys generates the identifiers used by the scenario store and the
render cache.

# Scenario IDs

Random UUIDs for database records:

	id := keys.NewID()

# Share Slugs

Share slugs create URL-friendly identifiers for saved scenarios:

	slug := keys.ShareSlug(scenarioID, salt)

Slugs are HMAC-SHA256 based and base62 encoded (alphanumeric only), so
they're deterministic per scenario and salt but unguessable without the
salt.

# Cache Keys

Render-cache keys hash the canonical parameter string of a request:

	key := keys.CacheKey(canonical)

Full SHA-256 hex; two requests share a cache entry exactly when their
canonical parameters match.
*/
package keys
