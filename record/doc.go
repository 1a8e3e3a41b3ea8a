/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

// Package record provides the default Record and RecordSet implementations
// consumed by the source layer. Records track field mutations so that
// change-only updates and batched diff updates can narrow their payloads;
// record sets additionally track added members and removed keys.
//
// The full field/record type system is an external collaborator; this
// package implements just enough of the construction interface to
// materialize raw call results and to carry update payloads.
package record
