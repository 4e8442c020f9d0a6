package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of a payment order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusFailed    OrderStatus = "FAILED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusExpired   OrderStatus = "EXPIRED"
)

// Terminal reports whether the status admits no further transitions.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusFailed, OrderStatusCancelled, OrderStatusExpired:
		return true
	}
	return false
}

// SourceType distinguishes platform-originated orders from merchant-originated ones.
type SourceType string

const (
	SourceInternal SourceType = "INTERNAL"
	SourceExternal SourceType = "EXTERNAL"
)

// CallbackState is the delivery state of the outbound merchant confirmation.
type CallbackState string

const (
	CallbackPending CallbackState = "PENDING"
	CallbackSuccess CallbackState = "SUCCESS"
	CallbackFailed  CallbackState = "FAILED"
)

// MoneySnapshot captures an amount/currency pair as it was at a point in time.
type MoneySnapshot struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// SettledSnapshot is the amount/currency actually sent to the gateway,
// plus the exchange rate used to derive it.
type SettledSnapshot struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Rate     decimal.Decimal `json:"rate"`
}

// MembershipGrant is optional package metadata granting a membership plan.
type MembershipGrant struct {
	Plan string `json:"plan"`
	Days int    `json:"days"`
}

// PackageSnapshot freezes the purchased package at order-creation time.
// It is never re-derived later so that signatures and receipts stay stable
// even if the catalog entry changes.
type PackageSnapshot struct {
	ID           string           `json:"id"`
	Label        string           `json:"label"`
	Price        decimal.Decimal  `json:"price"`
	Currency     string           `json:"currency"`
	BaseCredit   int64            `json:"base_credit"`
	BonusPercent int64            `json:"bonus_percent"`
	TotalCredit  int64            `json:"total_credit"`
	Membership   *MembershipGrant `json:"membership,omitempty"`
}

// DisplayPayload holds adapter-provided data shown to the payer.
type DisplayPayload struct {
	PayURL string `json:"pay_url,omitempty"`
}

// MerchantContext tracks an external order's originating merchant and the
// delivery state of the confirmation callback owed to it.
type MerchantContext struct {
	MerchantID        string          `json:"merchant_id"`
	BusinessOrderID   string          `json:"business_order_id"`
	CallbackURL       string          `json:"callback_url"`
	ReturnURL         string          `json:"return_url,omitempty"`
	ExpectedAmount    decimal.Decimal `json:"expected_amount"`
	ExpectedCurrency  string          `json:"expected_currency"`
	SignatureAudit    string          `json:"signature_audit,omitempty"`
	CallbackStatus    CallbackState   `json:"callback_status"`
	CallbackAttempts  int             `json:"callback_attempts"`
	LastCallbackAt    *time.Time      `json:"last_callback_at,omitempty"`
	LastCallbackError *string         `json:"last_callback_error,omitempty"`
}

// OrderDetails is the structured detail blob persisted with each order.
// Unknown top-level keys encountered on read are retained verbatim in Extra
// and written back untouched; they are never consulted for signing or
// settlement math.
type OrderDetails struct {
	Requested   MoneySnapshot    `json:"requested"`
	Settled     SettledSnapshot  `json:"settled"`
	Package     PackageSnapshot  `json:"package"`
	Display     DisplayPayload   `json:"display,omitzero"`
	RawCallback string           `json:"raw_callback,omitempty"`
	Merchant    *MerchantContext `json:"merchant,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var orderDetailKeys = map[string]struct{}{
	"requested": {}, "settled": {}, "package": {},
	"display": {}, "raw_callback": {}, "merchant": {},
}

type orderDetailsAlias OrderDetails

// UnmarshalJSON decodes known fields and preserves everything else in Extra.
func (d *OrderDetails) UnmarshalJSON(data []byte) error {
	var a orderDetailsAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for k := range orderDetailKeys {
		delete(all, k)
	}
	if len(all) > 0 {
		a.Extra = all
	}
	*d = OrderDetails(a)
	return nil
}

// MarshalJSON encodes known fields and merges preserved unknown keys back in.
func (d OrderDetails) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(orderDetailsAlias(d))
	if err != nil {
		return nil, err
	}
	if len(d.Extra) == 0 {
		return data, nil
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range d.Extra {
		if _, known := orderDetailKeys[k]; !known {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// PaymentOrder is the aggregate root for one money movement between the
// platform and a gateway.
type PaymentOrder struct {
	ID              uuid.UUID    `json:"id"`
	ExternalOrderID *string      `json:"external_order_id,omitempty"` // gateway-assigned
	SourceType      SourceType   `json:"source_type"`
	UserID          *uuid.UUID   `json:"user_id,omitempty"` // internal orders only
	Channel         string       `json:"channel"`
	Status          OrderStatus  `json:"status"`
	Details         OrderDetails `json:"details"`
	CreatedAt       time.Time    `json:"created_at"`
	CompletedAt     *time.Time   `json:"completed_at,omitempty"`
	ExpiresAt       *time.Time   `json:"expires_at,omitempty"`
}

// IsTerminal reports whether the order status admits no further transitions.
func (o *PaymentOrder) IsTerminal() bool {
	return o.Status.Terminal()
}

// MerchantRef returns the (merchantID, businessOrderID) idempotency pair for
// externally-sourced orders.
func (o *PaymentOrder) MerchantRef() (merchantID, businessOrderID string, ok bool) {
	if o.SourceType != SourceExternal || o.Details.Merchant == nil {
		return "", "", false
	}
	return o.Details.Merchant.MerchantID, o.Details.Merchant.BusinessOrderID, true
}
