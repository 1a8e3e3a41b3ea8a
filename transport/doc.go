/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

// Package transport defines the wire boundary of the library: a Transport
// sends one named call with arguments to the business-logic service and
// returns the raw response. Implementations own framing, sessions and
// serialization; the source layer only builds call arguments.
//
// Cancellation is the transport's own best-effort Abort; the layers above
// never invoke it automatically.
package transport
