package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TierDTO faixa de valor. Max nulo = sin límite superior.
type TierDTO struct {
	Min        decimal.Decimal  `json:"min"`
	Max        *decimal.Decimal `json:"max"`
	Percentage decimal.Decimal  `json:"percentage"`
}

// CreateRuleRequest entrada para crear una regla de comisión o impuesto.
// Kind "fixed" usa Percentage; "tiered" usa Tiers.
type CreateRuleRequest struct {
	Name       string           `json:"name" validate:"required,max=200"`
	Target     string           `json:"target" validate:"required,oneof=commission tax"`
	Kind       string           `json:"kind" validate:"required,oneof=fixed tiered"`
	IsDefault  bool             `json:"is_default"`
	Percentage *decimal.Decimal `json:"percentage"`
	Tiers      []TierDTO        `json:"tiers"`
}

// CommissionRuleResponse salida de una regla.
type CommissionRuleResponse struct {
	ID         string           `json:"id"`
	SupplierID string           `json:"supplier_id"`
	Name       string           `json:"name"`
	Target     string           `json:"target"`
	Kind       string           `json:"kind"`
	IsDefault  bool             `json:"is_default"`
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
	Tiers      []TierDTO        `json:"tiers,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}
