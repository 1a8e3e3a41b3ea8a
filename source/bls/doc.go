/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

// Package bls specializes the remote CRUD source for the business-logic
// service protocol: named-object method calls, composite identifiers,
// page/offset/position navigation, hierarchy expansion, batched diff
// updates and multi-group move/destroy.
//
// Multi-group operations dispatch one remote call per object name,
// concurrently, and fail on the first rejection without retracting sibling
// calls; partial completion on the server is observable behavior.
package bls
