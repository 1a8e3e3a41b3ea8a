/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

// Package query defines the abstract query model translated by the source
// layer: a filter expression, ordered sort terms, offset/limit, free-form
// metadata, and optional unioned sub-queries. It also implements the pure
// cursor extraction used by position-based navigation.
package query
