/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/meridianapps/rpcsource/provider"
	"github.com/meridianapps/rpcsource/query"
	"github.com/meridianapps/rpcsource/registry"
	"github.com/meridianapps/rpcsource/source/bls"
)

// Environment variables that override file values.
const (
	EnvAddress   = "RPCSOURCE_ADDRESS"
	EnvContract  = "RPCSOURCE_CONTRACT"
	EnvTimeoutMS = "RPCSOURCE_TIMEOUT_MS"
)

// EndpointConfig describes where calls go and which contract qualifies
// their method names.
type EndpointConfig struct {
	Address      string `yaml:"address"`
	Contract     string `yaml:"contract"`
	MoveContract string `yaml:"moveContract"`
}

// Config is the file representation of a source setup. Binding presets are
// keyed by contract name and registered on load, so sources created for
// those contracts pick them up automatically.
type Config struct {
	Endpoint      EndpointConfig               `yaml:"endpoint"`
	Transport     string                       `yaml:"transport"`
	Navigation    string                       `yaml:"navigation"`
	CallTimeoutMS int                          `yaml:"callTimeoutMs"`
	Bindings      map[string]map[string]string `yaml:"bindings"`
}

// Load reads a YAML config file and applies environment overrides.
// A .env file next to the process is honored when present.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Load .env file if present; ignore error if it doesn't exist.
	_ = godotenv.Load()
	cfg.applyEnv()

	for contract, preset := range cfg.Bindings {
		registry.RegisterBinding(contract, preset)
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAddress); v != "" {
		c.Endpoint.Address = v
	}
	if v := os.Getenv(EnvContract); v != "" {
		c.Endpoint.Contract = v
	}
	if v := os.Getenv(EnvTimeoutMS); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			c.CallTimeoutMS = ms
		}
	}
}

// CallTimeout returns the configured call timeout, or zero when unset so
// the provider default applies.
func (c *Config) CallTimeout() time.Duration {
	if c.CallTimeoutMS <= 0 {
		return 0
	}
	return time.Duration(c.CallTimeoutMS) * time.Millisecond
}

// NavigationMode maps the configured navigation name onto a query mode.
// Empty means the page default; an unknown name is an error.
func (c *Config) NavigationMode() (query.NavigationMode, error) {
	switch c.Navigation {
	case "", string(query.NavigationPage):
		return query.NavigationPage, nil
	case string(query.NavigationOffset):
		return query.NavigationOffset, nil
	case string(query.NavigationPosition):
		return query.NavigationPosition, nil
	}
	return "", fmt.Errorf("config: unknown navigation mode %q", c.Navigation)
}

// Source builds a business-logic source over the provider, applying the
// configured navigation mode. Explicit options are applied after it and win.
func (c *Config) Source(p *provider.Provider, opts ...bls.Option) (*bls.Source, error) {
	mode, err := c.NavigationMode()
	if err != nil {
		return nil, err
	}
	all := append([]bls.Option{bls.WithNavigationMode(mode)}, opts...)
	return bls.New(p, all...), nil
}

// Provider builds a provider for the configured endpoint. The transport is
// resolved from the transport registry by name when one is configured.
func (c *Config) Provider(opts ...provider.Option) (*provider.Provider, error) {
	if c.Endpoint.Address == "" {
		return nil, fmt.Errorf("config: endpoint address is required")
	}

	var all []provider.Option
	if c.Transport != "" {
		factory, err := registry.GetTransportFactory(c.Transport)
		if err != nil {
			return nil, err
		}
		tr, err := factory(c.Endpoint.Address)
		if err != nil {
			return nil, err
		}
		all = append(all, provider.WithTransport(tr))
	}
	if d := c.CallTimeout(); d > 0 {
		all = append(all, provider.WithCallTimeout(d))
	}
	all = append(all, opts...)

	return provider.New(provider.Endpoint{
		Address:      c.Endpoint.Address,
		Contract:     c.Endpoint.Contract,
		MoveContract: c.Endpoint.MoveContract,
	}, all...)
}
