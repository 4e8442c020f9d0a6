package provider

import (
	"recharge-gateway/internal/core/ports"
)

// Channel names known to the registry.
const (
	ChannelPayhub = "payhub"
	ChannelMock   = "mock"
)

// Registry implements ports.ProviderRegistry. The set of adapters is fixed at
// construction; only the lookup happens at runtime.
type Registry struct {
	providers map[string]ports.GatewayProvider
}

// NewRegistry creates a registry over the given adapters.
func NewRegistry(providers ...ports.GatewayProvider) *Registry {
	m := make(map[string]ports.GatewayProvider, len(providers))
	for _, p := range providers {
		m[p.Channel()] = p
	}
	return &Registry{providers: m}
}

// Get resolves a channel name to its adapter.
func (r *Registry) Get(channel string) (ports.GatewayProvider, bool) {
	p, ok := r.providers[channel]
	return p, ok
}
