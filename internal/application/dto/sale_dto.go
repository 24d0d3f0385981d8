package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de fechas en la API (sin hora).
const DateLayout = "2006-01-02"

// SaleLineRequest línea borrador. TaxRate / CommissionRate presentes = editadas a mano.
type SaleLineRequest struct {
	ProductID      string           `json:"product_id"`
	Quantity       *decimal.Decimal `json:"quantity"` // ausente = 1; en modo detallado debe ser > 0
	GrossValue     decimal.Decimal  `json:"gross_value"`
	TaxRate        *decimal.Decimal `json:"tax_rate"`
	CommissionRate *decimal.Decimal `json:"commission_rate"`
}

// PaymentTermDTO condición de pago. Si Notation no está vacía se aplica sobre el resto.
type PaymentTermDTO struct {
	Mode            string `json:"mode" validate:"required,oneof=cash installments"`
	OffsetDays      int    `json:"offset_days"`
	Count           int    `json:"count"`
	IntervalDays    int    `json:"interval_days"`
	FirstOffsetDays int    `json:"first_offset_days"`
	DayOffsets      []int  `json:"day_offsets,omitempty"`
	Notation        string `json:"notation,omitempty"`
}

// QuoteSaleRequest entrada para simular (o registrar) una venta.
type QuoteSaleRequest struct {
	SupplierID string            `json:"supplier_id" validate:"required"`
	ClientID   string            `json:"client_id"`
	Mode       string            `json:"mode" validate:"required,oneof=simple detailed"`
	SaleDate   string            `json:"sale_date" validate:"required"` // YYYY-MM-DD
	Lines      []SaleLineRequest `json:"lines" validate:"required,min=1"`
	Payment    PaymentTermDTO    `json:"payment"`
}

// SaleLineResponse línea con tasas resueltas.
type SaleLineResponse struct {
	ProductID            string          `json:"product_id,omitempty"`
	Quantity             decimal.Decimal `json:"quantity"`
	GrossValue           decimal.Decimal `json:"gross_value"`
	TaxRate              decimal.Decimal `json:"tax_rate"`
	CommissionRate       decimal.Decimal `json:"commission_rate"`
	TaxRateManual        bool            `json:"tax_rate_manual"`
	CommissionRateManual bool            `json:"commission_rate_manual"`
}

// InstallmentResponse parcela calculada.
type InstallmentResponse struct {
	Number           int             `json:"number"`
	OffsetDays       int             `json:"offset_days"`
	DueDate          string          `json:"due_date"`
	Amount           decimal.Decimal `json:"amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
}

// QuoteSaleResponse resultado del motor: tasas, totales y parcelas.
type QuoteSaleResponse struct {
	SupplierID      string                `json:"supplier_id"`
	Mode            string                `json:"mode"`
	SaleDate        string                `json:"sale_date"`
	Lines           []SaleLineResponse    `json:"lines"`
	TotalGross      decimal.Decimal       `json:"total_gross"`
	NetBase         decimal.Decimal       `json:"net_base"`
	TotalCommission decimal.Decimal       `json:"total_commission"`
	Payment         PaymentTermDTO        `json:"payment"`
	Installments    []InstallmentResponse `json:"installments"`
	Notation        string                `json:"notation"`
	Warning         string                `json:"warning,omitempty"`
}

// SaleResponse venta registrada.
type SaleResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	QuoteSaleResponse
}

// SaleListResponse lista paginada de ventas (solo cabeceras).
type SaleListResponse struct {
	Items []SaleSummaryResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// SaleSummaryResponse cabecera de una venta.
type SaleSummaryResponse struct {
	ID              string          `json:"id"`
	SupplierID      string          `json:"supplier_id"`
	ClientID        string          `json:"client_id,omitempty"`
	SaleDate        string          `json:"sale_date"`
	Notation        string          `json:"notation"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalCommission decimal.Decimal `json:"total_commission"`
}
