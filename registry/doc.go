/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

// Package registry holds the composition-time registries: transport
// factories keyed by name, and per-contract binding presets. Registries are
// populated at init time and resolved once while wiring a provider or
// source, never during a call.
package registry
