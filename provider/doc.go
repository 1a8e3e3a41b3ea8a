/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

// Package provider implements the business-logic provider: it owns a
// transport, qualifies method names with the endpoint's contract, and
// applies an optional client-side timeout race around each call. The
// timeout is a give-up: the underlying call is never cancelled.
package provider
