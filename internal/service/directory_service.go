package service

import (
	"context"
	"sync"
	"time"

	"recharge-gateway/internal/core/domain"
	"recharge-gateway/internal/core/ports"
)

// MerchantDirectoryImpl implements ports.MerchantDirectory: a TTL-boxed
// whole-collection cache over the settings resolver's merchant list.
type MerchantDirectoryImpl struct {
	settings ports.SettingsResolver
	ttl      time.Duration

	mu        sync.RWMutex
	byID      map[string]domain.MerchantConfig
	fetchedAt time.Time
}

// NewMerchantDirectory creates a new MerchantDirectoryImpl.
func NewMerchantDirectory(settings ports.SettingsResolver, ttl time.Duration) *MerchantDirectoryImpl {
	return &MerchantDirectoryImpl{settings: settings, ttl: ttl}
}

// Invalidate drops the cached mapping. Configuration writes call this
// instead of waiting for TTL expiry.
func (d *MerchantDirectoryImpl) Invalidate() {
	d.mu.Lock()
	d.byID = nil
	d.mu.Unlock()
}

// Lookup resolves a merchant by id. Returns nil for unknown or disabled
// merchants.
func (d *MerchantDirectoryImpl) Lookup(ctx context.Context, merchantID string) (*domain.MerchantConfig, error) {
	d.mu.RLock()
	if d.byID != nil && time.Since(d.fetchedAt) < d.ttl {
		m, ok := d.byID[merchantID]
		d.mu.RUnlock()
		if !ok || !m.Enabled {
			return nil, nil
		}
		return &m, nil
	}
	d.mu.RUnlock()

	merchants, err := d.settings.Merchants(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.MerchantConfig, len(merchants))
	for _, m := range merchants {
		byID[m.MerchantID] = m
	}

	d.mu.Lock()
	d.byID = byID
	d.fetchedAt = time.Now()
	d.mu.Unlock()

	m, ok := byID[merchantID]
	if !ok || !m.Enabled {
		return nil, nil
	}
	return &m, nil
}
