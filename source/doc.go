/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

// Package source implements the generic remote CRUD source. Every operation
// builds wire arguments through a pluggable per-operation passing strategy,
// lets a before-call observer rewrite them, dispatches through the provider
// and post-processes the raw result into records and record sets.
//
// RPC is the thin specialization exposing a single generic named-command
// call. The protocol-specific specialization lives in source/bls.
package source
