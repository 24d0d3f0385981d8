package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa una pasta: la representada cuyas ventas genera comisión.
// Rules es la instantánea de reglas de la pasta cargada por el repositorio.
type Supplier struct {
	ID                    string
	UserID                string
	Name                  string
	DefaultCommissionRate decimal.Decimal
	DefaultTaxRate        decimal.Decimal
	Rules                 []CommissionRule
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// RuleByID busca una regla propia de la pasta.
func (s *Supplier) RuleByID(id string) *CommissionRule {
	if s == nil || id == "" {
		return nil
	}
	for i := range s.Rules {
		if s.Rules[i].ID == id {
			return &s.Rules[i]
		}
	}
	return nil
}

// DefaultRule devuelve la regla marcada como default para el target, si existe.
func (s *Supplier) DefaultRule(target RuleTarget) *CommissionRule {
	if s == nil {
		return nil
	}
	for i := range s.Rules {
		if s.Rules[i].IsDefault && s.Rules[i].Target == target {
			return &s.Rules[i]
		}
	}
	return nil
}

// DefaultRate tasa fija de respaldo de la pasta para el target.
func (s *Supplier) DefaultRate(target RuleTarget) decimal.Decimal {
	if s == nil {
		return decimal.Zero
	}
	switch target {
	case TargetCommission:
		return s.DefaultCommissionRate
	case TargetTax:
		return s.DefaultTaxRate
	}
	return decimal.Zero
}
