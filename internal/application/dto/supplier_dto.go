package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest entrada para crear una pasta.
type CreateSupplierRequest struct {
	Name                  string          `json:"name" validate:"required,min=1,max=200"`
	DefaultCommissionRate decimal.Decimal `json:"default_commission_rate"`
	DefaultTaxRate        decimal.Decimal `json:"default_tax_rate"`
}

// UpdateSupplierRequest entrada para actualizar una pasta (campos opcionales).
type UpdateSupplierRequest struct {
	Name                  *string          `json:"name"`
	DefaultCommissionRate *decimal.Decimal `json:"default_commission_rate"`
	DefaultTaxRate        *decimal.Decimal `json:"default_tax_rate"`
}

// SupplierResponse salida de una pasta. Rules solo viene en el detalle.
type SupplierResponse struct {
	ID                    string                   `json:"id"`
	Name                  string                   `json:"name"`
	DefaultCommissionRate decimal.Decimal          `json:"default_commission_rate"`
	DefaultTaxRate        decimal.Decimal          `json:"default_tax_rate"`
	Rules                 []CommissionRuleResponse `json:"rules,omitempty"`
	CreatedAt             time.Time                `json:"created_at"`
	UpdatedAt             time.Time                `json:"updated_at"`
}

// SupplierListResponse lista paginada de pastas.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
