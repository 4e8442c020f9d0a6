package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"recharge-gateway/internal/core/domain"
	"recharge-gateway/pkg/apperror"

	"github.com/shopspring/decimal"
)

// Settings store keys read by the resolver. Channel credentials live under
// keyChannelPrefix + <channel> as a JSON ChannelCredentials document.
const (
	keyActiveChannel     = "gateway.active_channel"
	keyMockMode          = "gateway.mock_mode"
	keyChannelPrefix     = "gateway.channel."
	keyExchangeRate      = "exchange.rate"
	keyReferenceCurrency = "exchange.reference_currency"
	keyMerchants         = "merchants"
)

// SettingsResolverImpl implements ports.SettingsResolver with a
// whole-collection TTL cache over the settings store. Invalidate must be
// called by any configuration mutation path; TTL expiry is the fallback.
type SettingsResolverImpl struct {
	repo       settingsReader
	ttl        time.Duration
	serverMode string

	mu        sync.RWMutex
	snapshot  map[string]string
	fetchedAt time.Time
}

type settingsReader interface {
	Get(ctx context.Context, key string) (*string, error)
	List(ctx context.Context, prefix string) (map[string]string, error)
}

// NewSettingsResolver creates a new SettingsResolverImpl. serverMode
// "release" hard-disables mock mode regardless of the stored flag.
func NewSettingsResolver(repo settingsReader, ttl time.Duration, serverMode string) *SettingsResolverImpl {
	return &SettingsResolverImpl{repo: repo, ttl: ttl, serverMode: serverMode}
}

// Invalidate drops the cached snapshot. The next read refetches.
func (s *SettingsResolverImpl) Invalidate() {
	s.mu.Lock()
	s.snapshot = nil
	s.mu.Unlock()
}

func (s *SettingsResolverImpl) load(ctx context.Context) (map[string]string, error) {
	s.mu.RLock()
	if s.snapshot != nil && time.Since(s.fetchedAt) < s.ttl {
		snap := s.snapshot
		s.mu.RUnlock()
		return snap, nil
	}
	s.mu.RUnlock()

	all, err := s.repo.List(ctx, "")
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load settings: %w", err))
	}

	s.mu.Lock()
	s.snapshot = all
	s.fetchedAt = time.Now()
	s.mu.Unlock()
	return all, nil
}

func (s *SettingsResolverImpl) get(ctx context.Context, key string) (string, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	v, ok := snap[key]
	if !ok {
		return "", apperror.InternalError(fmt.Errorf("setting %q not configured", key))
	}
	return v, nil
}

// ActiveChannel returns the currently selected payment channel.
func (s *SettingsResolverImpl) ActiveChannel(ctx context.Context) (string, error) {
	return s.get(ctx, keyActiveChannel)
}

// ChannelCredentials returns credentials for a channel.
func (s *SettingsResolverImpl) ChannelCredentials(ctx context.Context, channel string) (*domain.ChannelCredentials, error) {
	raw, err := s.get(ctx, keyChannelPrefix+channel)
	if err != nil {
		return nil, err
	}
	var creds domain.ChannelCredentials
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("decode credentials for channel %q: %w", channel, err))
	}
	return &creds, nil
}

// ExchangeRate returns the reference-to-settlement conversion rate.
func (s *SettingsResolverImpl) ExchangeRate(ctx context.Context) (decimal.Decimal, error) {
	raw, err := s.get(ctx, keyExchangeRate)
	if err != nil {
		return decimal.Zero, err
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("parse exchange rate %q: %w", raw, err))
	}
	return rate, nil
}

// ReferenceCurrency returns the platform's reference currency.
func (s *SettingsResolverImpl) ReferenceCurrency(ctx context.Context) (string, error) {
	return s.get(ctx, keyReferenceCurrency)
}

// MockMode reports whether the mock provider should receive traffic.
// Always false in release mode, whatever the stored flag says.
func (s *SettingsResolverImpl) MockMode(ctx context.Context) (bool, error) {
	if s.serverMode == "release" {
		return false, nil
	}
	snap, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	return snap[keyMockMode] == "true", nil
}

// Merchants returns all configured external merchants.
func (s *SettingsResolverImpl) Merchants(ctx context.Context) ([]domain.MerchantConfig, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	raw, ok := snap[keyMerchants]
	if !ok || raw == "" {
		return nil, nil
	}
	var merchants []domain.MerchantConfig
	if err := json.Unmarshal([]byte(raw), &merchants); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("decode merchants: %w", err))
	}
	return merchants, nil
}
