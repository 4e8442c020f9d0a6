package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletCreditor implements ports.WalletCreditor. All writes run on the
// caller's transaction so wallet credit and order completion commit together.
type WalletCreditor struct {
	pool Pool
}

// NewWalletCreditor creates a new WalletCreditor.
func NewWalletCreditor(pool Pool) *WalletCreditor {
	return &WalletCreditor{pool: pool}
}

// Credit adds credit units to a user's wallet balance.
func (r *WalletCreditor) Credit(ctx context.Context, tx pgx.Tx, userID uuid.UUID, credit int64) error {
	query := `UPDATE user_wallets SET balance = balance + $1, updated_at = NOW() WHERE user_id = $2`

	tag, err := tx.Exec(ctx, query, credit, userID)
	if err != nil {
		return fmt.Errorf("credit wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found for user: %s", userID)
	}
	return nil
}

// FlagGuestConversion marks a guest account as converted by its first
// successful payment. No-op for accounts that already converted.
func (r *WalletCreditor) FlagGuestConversion(ctx context.Context, tx pgx.Tx, userID uuid.UUID) error {
	query := `UPDATE users SET guest_converted_at = NOW()
		WHERE id = $1 AND is_guest AND guest_converted_at IS NULL`

	if _, err := tx.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("flag guest conversion: %w", err)
	}
	return nil
}

// GrantMembership extends a user's membership by the given number of days.
// An active grant stacks: the new period starts where the current one ends.
func (r *WalletCreditor) GrantMembership(ctx context.Context, tx pgx.Tx, userID uuid.UUID, plan string, days int) error {
	query := `INSERT INTO user_memberships (user_id, plan, expires_at)
		VALUES ($1, $2, NOW() + make_interval(days => $3))
		ON CONFLICT (user_id, plan) DO UPDATE
		SET expires_at = GREATEST(user_memberships.expires_at, NOW()) + make_interval(days => $3)`

	if _, err := tx.Exec(ctx, query, userID, plan, days); err != nil {
		return fmt.Errorf("grant membership: %w", err)
	}
	return nil
}
