/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

// Package jsonrpc implements the default Transport: JSON-RPC 2.0 over HTTP.
// Importing the package registers it under the name "jsonrpc", which the
// provider resolves when no transport is supplied explicitly.
package jsonrpc
