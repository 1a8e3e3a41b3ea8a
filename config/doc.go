/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

// Package config loads source setup from YAML files with environment
// overrides, and turns the result into a configured provider.
package config
