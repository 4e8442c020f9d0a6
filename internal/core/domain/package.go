package domain

import (
	"github.com/shopspring/decimal"
)

// PackageStatus marks a catalog entry as purchasable or retired.
type PackageStatus string

const (
	PackageActive   PackageStatus = "ACTIVE"
	PackageInactive PackageStatus = "INACTIVE"
)

// RechargePackage is a priced catalog entry. TotalCredit is stored
// explicitly (base + bonus) and never recomputed, so receipts keep matching
// what the payer was shown.
type RechargePackage struct {
	ID           string           `json:"id"`
	Label        string           `json:"label"`
	Price        decimal.Decimal  `json:"price"`
	Currency     string           `json:"currency"` // ISO-4217
	BaseCredit   int64            `json:"base_credit"`
	BonusPercent int64            `json:"bonus_percent"`
	TotalCredit  int64            `json:"total_credit"`
	Status       PackageStatus    `json:"status"`
	Membership   *MembershipGrant `json:"membership,omitempty"`
}

// IsActive reports whether the package can be purchased.
func (p *RechargePackage) IsActive() bool {
	return p.Status == PackageActive
}

// Snapshot freezes the package for embedding into an order.
func (p *RechargePackage) Snapshot() PackageSnapshot {
	var m *MembershipGrant
	if p.Membership != nil {
		c := *p.Membership
		m = &c
	}
	return PackageSnapshot{
		ID:           p.ID,
		Label:        p.Label,
		Price:        p.Price,
		Currency:     p.Currency,
		BaseCredit:   p.BaseCredit,
		BonusPercent: p.BonusPercent,
		TotalCredit:  p.TotalCredit,
		Membership:   m,
	}
}
