package ports

import (
	"context"
	"fmt"
	"time"

	"recharge-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SignatureCodec handles canonical-string construction, keyed digests and
// timestamp-skew checks for both inbound and outbound signed messages.
type SignatureCodec interface {
	// Canonical joins non-empty fields (excluding "sign") as k=v pairs,
	// keys sorted byte-lexicographically, separated by '&'.
	Canonical(fields map[string]string) string
	SignHMAC(secret string, fields map[string]string) string
	VerifyHMAC(secret string, fields map[string]string, signature string) bool
	// SignMD5 is the legacy keyed digest used by aggregator channels:
	// uppercase MD5 over canonical + "&key=" + secret.
	SignMD5(secret string, fields map[string]string) string
	VerifyMD5(secret string, fields map[string]string, signature string) bool
	WithinSkew(timestamp int64, now time.Time, window time.Duration) bool
}

// ReplayGuard is the atomic set-if-absent primitive deduplicating signed
// messages. CheckAndSet returns true when the key is new. Release frees a
// claimed key so the sender's retry of a message that failed internally is
// not misread as a replay.
type ReplayGuard interface {
	CheckAndSet(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// JobScheduler is the delayed-job facility. Scheduling the same jobID twice
// is a no-op; the backing queue guarantees at most one concurrent execution
// per jobID.
type JobScheduler interface {
	Schedule(ctx context.Context, jobID string, taskType string, payload []byte, delay time.Duration) error
}

// Task types routed through the delayed-job facility.
const (
	TaskCallbackRetry = "callback:retry"
	TaskOrderSweep    = "orders:sweep"
)

// CallbackJob is the payload of a TaskCallbackRetry task.
type CallbackJob struct {
	OrderID string `json:"order_id"`
	Attempt int    `json:"attempt"`
}

// CallbackJobID builds the dedup id for one delivery attempt. Scheduling the
// same attempt twice collapses into one task.
func CallbackJobID(orderID string, attempt int) string {
	return fmt.Sprintf("cbretry:%s:%d", orderID, attempt)
}

// EventPublisher publishes domain events after the enclosing transaction
// commits. Publish failures are logged by the caller, never retried here.
type EventPublisher interface {
	PublishOrderCompleted(ctx context.Context, ev domain.OrderCompletedEvent) error
}

// SettingsResolver exposes typed, cached reads over the settings store.
type SettingsResolver interface {
	ActiveChannel(ctx context.Context) (string, error)
	ChannelCredentials(ctx context.Context, channel string) (*domain.ChannelCredentials, error)
	ExchangeRate(ctx context.Context) (decimal.Decimal, error)
	ReferenceCurrency(ctx context.Context) (string, error)
	// MockMode is hard-disabled in release mode regardless of stored value.
	MockMode(ctx context.Context) (bool, error)
	Merchants(ctx context.Context) ([]domain.MerchantConfig, error)
	Invalidate()
}

// MerchantDirectory is the cached merchant lookup used by external order
// creation and callback delivery.
type MerchantDirectory interface {
	// Lookup returns nil for unknown or disabled merchants.
	Lookup(ctx context.Context, merchantID string) (*domain.MerchantConfig, error)
	Invalidate()
}

// InitResult is the normalized outcome of a gateway payment initiation.
type InitResult struct {
	Status          domain.OrderStatus // COMPLETED (sync success) or PENDING
	ExternalOrderID *string
	PayURL          *string
}

// CallbackUpdate is the normalized partial-order update an adapter extracts
// from a verified inbound gateway callback. Status mapping from channel
// state codes is the adapter's business, never the lifecycle manager's.
type CallbackUpdate struct {
	OrderID         string // platform order id, if the payload carries one
	ExternalOrderID string
	Status          domain.OrderStatus
	Amount          decimal.Decimal
	Currency        string
	Timestamp       int64 // seconds
	Signature       string
	Raw             string // verbatim payload, retained for audit
}

// GatewayProvider is one payment channel integration.
type GatewayProvider interface {
	Channel() string
	CreatePayment(ctx context.Context, order *domain.PaymentOrder) (*InitResult, error)
	// HandleCallback verifies payload shape and signature. Verification
	// failures return a SIG-class error; the caller must not acknowledge.
	HandleCallback(ctx context.Context, raw []byte) (*CallbackUpdate, error)
}

// ProviderRegistry resolves a channel string to its adapter. Construction is
// static at startup; only the lookup is a runtime string resolution.
type ProviderRegistry interface {
	Get(channel string) (GatewayProvider, bool)
}

// --- Order lifecycle ---

// CreateOrderRequest is a validated internal order creation request.
type CreateOrderRequest struct {
	UserID    uuid.UUID
	Amount    string // positive decimal string
	Currency  string // ISO-4217
	PackageID string // optional; resolved by (amount, currency) when empty
}

// ExternalOrderRequest is a signed merchant order creation request.
type ExternalOrderRequest struct {
	MerchantID      string
	BusinessOrderID string
	PackageID       string
	RetURL          string
	ExtraData       string
	Timestamp       int64
	Sign            string
}

// ExternalQueryRequest is a signed merchant status query.
type ExternalQueryRequest struct {
	MerchantID      string
	BusinessOrderID string
	Timestamp       int64
	Sign            string
}

// OrderProjection is the caller-facing view of an order.
type OrderProjection struct {
	ID              string                  `json:"id"`
	Status          domain.OrderStatus      `json:"status"`
	Amount          decimal.Decimal         `json:"amount"`
	Currency        string                  `json:"currency"`
	SettledAmount   decimal.Decimal         `json:"settled_amount"`
	SettledCurrency string                  `json:"settled_currency"`
	Channel         string                  `json:"channel"`
	ExternalOrderID *string                 `json:"external_order_id,omitempty"`
	PayURL          *string                 `json:"pay_url,omitempty"`
	BusinessOrderID string                  `json:"business_order_id,omitempty"`
	ProductInfo     *domain.PackageSnapshot `json:"product_info,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	CompletedAt     *time.Time              `json:"completed_at,omitempty"`
}

// ExternalStatus is the merchant-facing order state.
type ExternalStatus string

const (
	ExternalStatusPending ExternalStatus = "pending"
	ExternalStatusSuccess ExternalStatus = "success"
	ExternalStatusFailed  ExternalStatus = "failed"
)

// ExternalQueryResult is the response to a signed status query.
type ExternalQueryResult struct {
	Status      ExternalStatus          `json:"status"`
	ProductInfo *domain.PackageSnapshot `json:"product_info,omitempty"`
	PaidAt      *time.Time              `json:"paid_at,omitempty"`
}

// CallbackResult tells the transport layer how to answer an inbound gateway
// callback. Acknowledged=false means the payload could not be trusted
// (signature/replay/format/internal error) and the gateway should retry;
// every successfully interpreted outcome acknowledges, including business
// failures.
type CallbackResult struct {
	Accepted     bool
	Acknowledged bool
	Reason       string
}

// OrderService is the order lifecycle manager.
type OrderService interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderProjection, error)
	CreateExternalOrder(ctx context.Context, req ExternalOrderRequest) (*OrderProjection, error)
	QueryExternalOrder(ctx context.Context, req ExternalQueryRequest) (*ExternalQueryResult, error)
	ApplyCallback(ctx context.Context, channel string, raw []byte) CallbackResult
}

// CallbackNotifier delivers signed order confirmations to merchants.
// Manual admin retries and the delayed-job consumer share Notify.
type CallbackNotifier interface {
	Notify(ctx context.Context, orderID uuid.UUID) error
	// CanRetry reports whether automatic retries remain for the order.
	CanRetry(o *domain.PaymentOrder) bool
}
