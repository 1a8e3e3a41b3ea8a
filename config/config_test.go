/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianapps/rpcsource/provider"
	"github.com/meridianapps/rpcsource/query"
	"github.com/meridianapps/rpcsource/registry"
	"github.com/meridianapps/rpcsource/transport/mock"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rpcsource.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadReadsEndpointAndTimeout(t *testing.T) {
	path := writeConfig(t, `
endpoint:
  address: https://svc.example.com/rpc
  contract: Orders
  moveContract: Ranking
callTimeoutMs: 2500
navigation: offset
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://svc.example.com/rpc", cfg.Endpoint.Address)
	assert.Equal(t, "Orders", cfg.Endpoint.Contract)
	assert.Equal(t, "Ranking", cfg.Endpoint.MoveContract)
	assert.Equal(t, "offset", cfg.Navigation)
	assert.Equal(t, 2500*time.Millisecond, cfg.CallTimeout())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, `
endpoint:
  address: https://file.example.com/rpc
  contract: Orders
callTimeoutMs: 1000
`)

	t.Setenv(EnvAddress, "https://env.example.com/rpc")
	t.Setenv(EnvContract, "Invoices")
	t.Setenv(EnvTimeoutMS, "500")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com/rpc", cfg.Endpoint.Address)
	assert.Equal(t, "Invoices", cfg.Endpoint.Contract)
	assert.Equal(t, 500*time.Millisecond, cfg.CallTimeout())
}

func TestLoadRegistersBindingPresets(t *testing.T) {
	path := writeConfig(t, `
endpoint:
  address: https://svc.example.com/rpc
  contract: Legacy
bindings:
  Legacy:
    read: Fetch
    destroy: Remove
`)

	_, err := Load(path)
	require.NoError(t, err)

	preset, ok := registry.GetBinding("Legacy")
	require.True(t, ok)
	assert.Equal(t, "Fetch", preset["read"])
	assert.Equal(t, "Remove", preset["destroy"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	path := writeConfig(t, "endpoint: [not a mapping")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestProviderFromConfig(t *testing.T) {
	cfg := &Config{
		Endpoint: EndpointConfig{
			Address:  "https://svc.example.com/rpc",
			Contract: "Orders",
		},
		CallTimeoutMS: 750,
	}

	p, err := cfg.Provider(provider.WithTransport(mock.New()))
	require.NoError(t, err)
	assert.Equal(t, "Orders", p.Endpoint().Contract)
}

func TestSourceAppliesConfiguredNavigation(t *testing.T) {
	path := writeConfig(t, `
endpoint:
  address: https://svc.example.com/rpc
  contract: Orders
navigation: offset
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	tr := mock.New().WithResult("Orders.List", map[string]any{"Items": []any{}, "HasMore": false})
	p, err := cfg.Provider(provider.WithTransport(tr))
	require.NoError(t, err)

	src, err := cfg.Source(p)
	require.NoError(t, err)

	q := query.New()
	q.Offset = 20
	q.Limit = query.Int(10)
	_, err = src.Query(context.Background(), q)
	require.NoError(t, err)

	calls := tr.CallsTo("Orders.List")
	require.Len(t, calls, 1)
	nav := calls[0].Args.(map[string]any)["Navigation"].(map[string]any)
	assert.Equal(t, 20, nav["Offset"], "the configured mode must reach the wire payload")
	assert.NotContains(t, nav, "Page")
}

func TestNavigationModeNames(t *testing.T) {
	tests := []struct {
		name string
		want query.NavigationMode
	}{
		{"", query.NavigationPage},
		{"page", query.NavigationPage},
		{"offset", query.NavigationOffset},
		{"position", query.NavigationPosition},
	}

	for _, tt := range tests {
		cfg := &Config{Navigation: tt.name}
		mode, err := cfg.NavigationMode()
		require.NoError(t, err)
		assert.Equal(t, tt.want, mode)
	}

	cfg := &Config{Navigation: "spiral"}
	_, err := cfg.NavigationMode()
	assert.Error(t, err)
}

func TestProviderRequiresAddress(t *testing.T) {
	cfg := &Config{}
	_, err := cfg.Provider()
	assert.Error(t, err)
}

func TestZeroTimeoutUsesProviderDefault(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, time.Duration(0), cfg.CallTimeout())
}
