package ports

import (
	"context"
	"errors"
	"time"

	"recharge-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ErrConflict is returned by OrderRepository.Create when the
// (merchant_id, business_order_id) uniqueness constraint is violated.
// Callers re-read and return the winner's order.
var ErrConflict = errors.New("unique constraint conflict")

// OrderRepository defines persistence operations for payment orders.
// Methods accepting pgx.Tx run inside transaction blocks; GetByIDForUpdate
// takes a row lock so status transitions serialize per order.
type OrderRepository interface {
	Create(ctx context.Context, tx pgx.Tx, o *domain.PaymentOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentOrder, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PaymentOrder, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.PaymentOrder, error)
	GetByMerchantRef(ctx context.Context, merchantID, businessOrderID string) (*domain.PaymentOrder, error)
	Update(ctx context.Context, tx pgx.Tx, o *domain.PaymentOrder) error
	ListPendingOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]domain.PaymentOrder, error)
}

// PackageRepository defines read access to the recharge package catalog.
type PackageRepository interface {
	GetByID(ctx context.Context, id string) (*domain.RechargePackage, error)
	FindActiveByPrice(ctx context.Context, amount decimal.Decimal, currency string) (*domain.RechargePackage, error)
	ListActive(ctx context.Context) ([]domain.RechargePackage, error)
}

// SettingsRepository is the key-value settings store backing the settings
// resolver. Storage mechanics (admin CRUD, encryption at rest) are outside
// this core.
type SettingsRepository interface {
	// Get returns nil when the key does not exist.
	Get(ctx context.Context, key string) (*string, error)
	List(ctx context.Context, prefix string) (map[string]string, error)
}

// WalletCreditor is the external wallet collaborator. Crediting happens
// inside the order's completing transaction so "credit wallet" and
// "mark order COMPLETED" are all-or-nothing.
type WalletCreditor interface {
	Credit(ctx context.Context, tx pgx.Tx, userID uuid.UUID, credit int64) error
	FlagGuestConversion(ctx context.Context, tx pgx.Tx, userID uuid.UUID) error
	// GrantMembership stacks on an existing grant: start = max(now, current end).
	GrantMembership(ctx context.Context, tx pgx.Tx, userID uuid.UUID, plan string, days int) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
