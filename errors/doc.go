/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

// Package errors provides semantic error types for the rpcsource library.
//
// The package distinguishes synchronous argument-construction failures
// (ArgumentError, ShapeError), composition failures (ProviderUnresolvedError)
// and transport-boundary failures (RemoteCallError, CancellationError,
// TimeoutError). Callers can match on the sentinel values with errors.Is or
// use the IsXxx helpers.
package errors
