package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderCompletedEvent is published after an order's completing transaction
// commits, for downstream commission/engagement processing.
type OrderCompletedEvent struct {
	OrderID     uuid.UUID       `json:"order_id"`
	SourceType  SourceType      `json:"source_type"`
	Channel     string          `json:"channel"`
	UserID      *uuid.UUID      `json:"user_id,omitempty"`
	MerchantID  string          `json:"merchant_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	TotalCredit int64           `json:"total_credit"`
	CompletedAt time.Time       `json:"completed_at"`
}
