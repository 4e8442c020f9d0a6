package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"recharge-gateway/internal/core/domain"
	"recharge-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// OrderRepo implements ports.OrderRepository.
//
// merchant_id and business_order_id are denormalized out of the details blob
// into their own columns so the partial unique index payment_orders_merchant_ref_key
// can enforce external-order idempotency at the database level.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

const orderColumns = `id, external_order_id, source_type, user_id, channel, status, details, created_at, completed_at, expires_at`

// Create inserts a new order within a database transaction. A unique
// violation on the merchant reference surfaces as ports.ErrConflict.
func (r *OrderRepo) Create(ctx context.Context, tx pgx.Tx, o *domain.PaymentOrder) error {
	details, err := json.Marshal(o.Details)
	if err != nil {
		return fmt.Errorf("encode order details: %w", err)
	}

	merchantID, businessOrderID, _ := o.MerchantRef()

	query := `INSERT INTO payment_orders (id, external_order_id, source_type, user_id, channel, status,
		merchant_id, business_order_id, details, created_at, completed_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), $9, $10, $11, $12)`

	_, err = tx.Exec(ctx, query,
		o.ID, o.ExternalOrderID, o.SourceType, o.UserID, o.Channel, o.Status,
		merchantID, businessOrderID, details, o.CreatedAt, o.CompletedAt, o.ExpiresAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ports.ErrConflict
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID fetches an order by UUID (non-locking read).
func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM payment_orders WHERE id = $1`
	return scanOrder(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches an order with a row lock so status transitions
// serialize per order. MUST be called within a transaction.
func (r *OrderRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PaymentOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM payment_orders WHERE id = $1 FOR UPDATE`
	return scanOrder(tx.QueryRow(ctx, query, id))
}

// GetByExternalID fetches an order by the gateway-assigned identifier.
func (r *OrderRepo) GetByExternalID(ctx context.Context, externalID string) (*domain.PaymentOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM payment_orders WHERE external_order_id = $1`
	return scanOrder(r.pool.QueryRow(ctx, query, externalID))
}

// GetByMerchantRef fetches an order by its merchant idempotency pair.
func (r *OrderRepo) GetByMerchantRef(ctx context.Context, merchantID, businessOrderID string) (*domain.PaymentOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM payment_orders WHERE merchant_id = $1 AND business_order_id = $2`
	return scanOrder(r.pool.QueryRow(ctx, query, merchantID, businessOrderID))
}

// Update persists the mutable parts of an order within a transaction.
func (r *OrderRepo) Update(ctx context.Context, tx pgx.Tx, o *domain.PaymentOrder) error {
	details, err := json.Marshal(o.Details)
	if err != nil {
		return fmt.Errorf("encode order details: %w", err)
	}

	query := `UPDATE payment_orders SET external_order_id = $1, status = $2, details = $3,
		completed_at = $4, expires_at = $5 WHERE id = $6`

	tag, err := tx.Exec(ctx, query, o.ExternalOrderID, o.Status, details, o.CompletedAt, o.ExpiresAt, o.ID)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order not found: %s", o.ID)
	}
	return nil
}

// ListPendingOlderThan fetches PENDING orders created before the cutoff,
// oldest first.
func (r *OrderRepo) ListPendingOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]domain.PaymentOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM payment_orders
		WHERE status = 'PENDING' AND created_at < $1 ORDER BY created_at LIMIT $2`

	rows, err := r.pool.Query(ctx, query, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.PaymentOrder
	for rows.Next() {
		o, err := scanOrderRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}
	return orders, nil
}

// scanOrder scans a single row into a PaymentOrder, mapping no-rows to nil.
func scanOrder(row pgx.Row) (*domain.PaymentOrder, error) {
	o, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}
	return o, nil
}

func scanOrderRow(row pgx.Row) (*domain.PaymentOrder, error) {
	o := &domain.PaymentOrder{}
	var details []byte
	err := row.Scan(
		&o.ID, &o.ExternalOrderID, &o.SourceType, &o.UserID, &o.Channel, &o.Status,
		&details, &o.CreatedAt, &o.CompletedAt, &o.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(details, &o.Details); err != nil {
		return nil, fmt.Errorf("decode order details: %w", err)
	}
	return o, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
