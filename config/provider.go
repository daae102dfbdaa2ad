package config

import "sync/atomic"

// Provider hands out the current configuration. Readers call Get on
// every use instead of holding on to a *Config, so a reload through
// Update becomes visible without coordination.
type Provider struct {
	current atomic.Pointer[Config]
}

func NewProvider(cfg *Config) *Provider {
	if cfg == nil {
		panic("config provider requires a non-nil initial config")
	}
	p := &Provider{}
	p.current.Store(cfg)
	return p
}

// Get returns the current config. The returned value must be treated as
// read-only.
func (p *Provider) Get() *Config {
	return p.current.Load()
}

// Update atomically replaces the current config.
func (p *Provider) Update(cfg *Config) {
	if cfg == nil {
		panic("config provider cannot be updated with a nil config")
	}
	p.current.Store(cfg)
}
