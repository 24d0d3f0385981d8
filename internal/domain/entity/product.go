package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto de una pasta. Puede referenciar una regla por target y/o
// tener sus propias tasas fijas (nil = no definida).
type Product struct {
	ID                    string
	SupplierID            string
	SKU                   string
	Name                  string
	Price                 decimal.Decimal
	CommissionRuleID      *string
	TaxRuleID             *string
	DefaultCommissionRate *decimal.Decimal
	DefaultTaxRate        *decimal.Decimal
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// RuleID devuelve el id de regla asignado al target ("" si no hay).
func (p *Product) RuleID(target RuleTarget) string {
	if p == nil {
		return ""
	}
	var id *string
	switch target {
	case TargetCommission:
		id = p.CommissionRuleID
	case TargetTax:
		id = p.TaxRuleID
	}
	if id == nil {
		return ""
	}
	return *id
}

// DefaultRate tasa fija propia del producto para el target (nil si no tiene).
func (p *Product) DefaultRate(target RuleTarget) *decimal.Decimal {
	if p == nil {
		return nil
	}
	switch target {
	case TargetCommission:
		return p.DefaultCommissionRate
	case TargetTax:
		return p.DefaultTaxRate
	}
	return nil
}
