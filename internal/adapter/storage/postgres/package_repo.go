package postgres

import (
	"context"
	"errors"
	"fmt"

	"recharge-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PackageRepo implements ports.PackageRepository.
//
// membership_plan/membership_days are nullable; both set means the package
// carries a membership grant.
type PackageRepo struct {
	pool Pool
}

// NewPackageRepo creates a new PackageRepo.
func NewPackageRepo(pool Pool) *PackageRepo {
	return &PackageRepo{pool: pool}
}

const packageColumns = `id, label, price::text, currency, base_credit, bonus_percent, total_credit, status, membership_plan, membership_days`

// GetByID fetches a package by id, active or not.
func (r *PackageRepo) GetByID(ctx context.Context, id string) (*domain.RechargePackage, error) {
	query := `SELECT ` + packageColumns + ` FROM recharge_packages WHERE id = $1`
	return scanPackage(r.pool.QueryRow(ctx, query, id))
}

// FindActiveByPrice fetches the active package matching an exact
// (price, currency) pair.
func (r *PackageRepo) FindActiveByPrice(ctx context.Context, amount decimal.Decimal, currency string) (*domain.RechargePackage, error) {
	query := `SELECT ` + packageColumns + ` FROM recharge_packages
		WHERE status = 'ACTIVE' AND price = $1::numeric AND currency = $2`
	return scanPackage(r.pool.QueryRow(ctx, query, amount.String(), currency))
}

// ListActive fetches all purchasable packages, cheapest first.
func (r *PackageRepo) ListActive(ctx context.Context) ([]domain.RechargePackage, error) {
	query := `SELECT ` + packageColumns + ` FROM recharge_packages WHERE status = 'ACTIVE' ORDER BY price`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active packages: %w", err)
	}
	defer rows.Close()

	var packages []domain.RechargePackage
	for rows.Next() {
		p, err := scanPackageRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan package row: %w", err)
		}
		packages = append(packages, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate package rows: %w", err)
	}
	return packages, nil
}

func scanPackage(row pgx.Row) (*domain.RechargePackage, error) {
	p, err := scanPackageRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan package: %w", err)
	}
	return p, nil
}

func scanPackageRow(row pgx.Row) (*domain.RechargePackage, error) {
	p := &domain.RechargePackage{}
	var price string
	var plan *string
	var days *int
	err := row.Scan(
		&p.ID, &p.Label, &price, &p.Currency,
		&p.BaseCredit, &p.BonusPercent, &p.TotalCredit, &p.Status,
		&plan, &days,
	)
	if err != nil {
		return nil, err
	}
	p.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parse package price %q: %w", price, err)
	}
	if plan != nil && days != nil {
		p.Membership = &domain.MembershipGrant{Plan: *plan, Days: *days}
	}
	return p, nil
}
