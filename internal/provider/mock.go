package provider

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"recharge-gateway/internal/core/domain"
	"recharge-gateway/internal/core/ports"
	"recharge-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// MockProvider simulates a gateway for test environments. It is never
// registered when the server runs in release mode. Outcomes derive
// deterministically from the order id so scenarios are reproducible.
type MockProvider struct {
	settings ports.SettingsResolver
	codec    ports.SignatureCodec
	log      zerolog.Logger
}

// NewMockProvider creates a new MockProvider.
func NewMockProvider(settings ports.SettingsResolver, codec ports.SignatureCodec, log zerolog.Logger) *MockProvider {
	return &MockProvider{settings: settings, codec: codec, log: log}
}

func (p *MockProvider) Channel() string { return ChannelMock }

// CreatePayment resolves an outcome from the last byte of the order id:
// 0 simulates a gateway rejection, 1-2 leave the order pending behind a fake
// pay URL, the rest complete synchronously.
func (p *MockProvider) CreatePayment(ctx context.Context, order *domain.PaymentOrder) (*ports.InitResult, error) {
	enabled, err := p.settings.MockMode(ctx)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, apperror.ErrGatewayRejected(ChannelMock, errors.New("mock mode disabled"))
	}

	externalID := "MOCK-" + hex.EncodeToString(order.ID[:8])
	switch order.ID[15] % 10 {
	case 0:
		return nil, apperror.ErrGatewayRejected(ChannelMock, errors.New("simulated decline"))
	case 1, 2:
		payURL := "https://mock.invalid/pay/" + order.ID.String()
		return &ports.InitResult{
			Status:          domain.OrderStatusPending,
			ExternalOrderID: &externalID,
			PayURL:          &payURL,
		}, nil
	default:
		p.log.Debug().Str("order_id", order.ID.String()).Msg("mock payment completed synchronously")
		return &ports.InitResult{
			Status:          domain.OrderStatusCompleted,
			ExternalOrderID: &externalID,
		}, nil
	}
}

// HandleCallback verifies a test-injected callback. Payloads are flat string
// fields signed with HMAC-SHA256 under the mock channel secret, same shape
// the real channels use.
func (p *MockProvider) HandleCallback(ctx context.Context, raw []byte) (*ports.CallbackUpdate, error) {
	creds, err := p.settings.ChannelCredentials(ctx, ChannelMock)
	if err != nil {
		return nil, err
	}

	fields, err := parseCallbackFields(raw)
	if err != nil {
		return nil, apperror.ErrInvalidSignature()
	}
	sign := fields["sign"]
	if sign == "" || !p.codec.VerifyHMAC(creds.Secret, fields, sign) {
		return nil, apperror.ErrInvalidSignature()
	}

	var status domain.OrderStatus
	switch fields["status"] {
	case "success":
		status = domain.OrderStatusCompleted
	case "failed":
		status = domain.OrderStatusFailed
	default:
		return nil, apperror.ErrInvalidSignature()
	}

	amount, err := decimal.NewFromString(fields["amount"])
	if err != nil {
		return nil, apperror.ErrInvalidSignature()
	}
	timestamp, err := strconv.ParseInt(fields["timestamp"], 10, 64)
	if err != nil {
		return nil, apperror.ErrInvalidSignature()
	}

	return &ports.CallbackUpdate{
		OrderID:         fields["out_order_id"],
		ExternalOrderID: fields["order_id"],
		Status:          status,
		Amount:          amount,
		Currency:        fields["currency"],
		Timestamp:       timestamp,
		Signature:       sign,
		Raw:             string(raw),
	}, nil
}

// SignTestCallback builds a signed callback payload for integration tests and
// manual poking. It is the inverse of HandleCallback.
func (p *MockProvider) SignTestCallback(ctx context.Context, order *domain.PaymentOrder, status string, at time.Time) (map[string]string, error) {
	creds, err := p.settings.ChannelCredentials(ctx, ChannelMock)
	if err != nil {
		return nil, err
	}
	fields := map[string]string{
		"out_order_id": order.ID.String(),
		"status":       status,
		"amount":       order.Details.Settled.Amount.String(),
		"currency":     order.Details.Settled.Currency,
		"timestamp":    fmt.Sprintf("%d", at.Unix()),
	}
	if order.ExternalOrderID != nil {
		fields["order_id"] = *order.ExternalOrderID
	}
	fields["sign"] = p.codec.SignHMAC(creds.Secret, fields)
	return fields, nil
}
