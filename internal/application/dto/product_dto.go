package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto de una pasta.
type CreateProductRequest struct {
	SKU                   string           `json:"sku" validate:"required,min=1,max=100"`
	Name                  string           `json:"name" validate:"required,min=1,max=200"`
	Price                 decimal.Decimal  `json:"price"`
	CommissionRuleID      *string          `json:"commission_rule_id"`
	TaxRuleID             *string          `json:"tax_rule_id"`
	DefaultCommissionRate *decimal.Decimal `json:"default_commission_rate"`
	DefaultTaxRate        *decimal.Decimal `json:"default_tax_rate"`
}

// UpdateProductRequest entrada para actualizar un producto. Las reglas y tasas se
// reemplazan tal como vienen (nil = quitar).
type UpdateProductRequest struct {
	Name                  *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price                 *decimal.Decimal `json:"price"`
	CommissionRuleID      *string          `json:"commission_rule_id"`
	TaxRuleID             *string          `json:"tax_rule_id"`
	DefaultCommissionRate *decimal.Decimal `json:"default_commission_rate"`
	DefaultTaxRate        *decimal.Decimal `json:"default_tax_rate"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                    string           `json:"id"`
	SupplierID            string           `json:"supplier_id"`
	SKU                   string           `json:"sku"`
	Name                  string           `json:"name"`
	Price                 decimal.Decimal  `json:"price"`
	CommissionRuleID      *string          `json:"commission_rule_id"`
	TaxRuleID             *string          `json:"tax_rule_id"`
	DefaultCommissionRate *decimal.Decimal `json:"default_commission_rate"`
	DefaultTaxRate        *decimal.Decimal `json:"default_tax_rate"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
