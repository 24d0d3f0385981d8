package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SupplierCommissionResult comisión acumulada de una pasta en un período.
// Lo produce la DB; el use case lo convierte en DTO.
type SupplierCommissionResult struct {
	SupplierID      string
	SupplierName    string
	SaleCount       int
	TotalGross      decimal.Decimal
	TotalCommission decimal.Decimal
}

// MonthlyReceivableResult parcelas que vencen en un mes (primer día del mes en Month).
type MonthlyReceivableResult struct {
	Month      time.Time
	Count      int
	Amount     decimal.Decimal
	Commission decimal.Decimal
}

// AnalyticsRepository consultas read-only para reportes de comisión.
type AnalyticsRepository interface {
	// GetCommissionBySupplier agrega las ventas del usuario por pasta en [from, to].
	GetCommissionBySupplier(ctx context.Context, userID string, from, to time.Time) ([]SupplierCommissionResult, error)
	// GetReceivablesByMonth agrega por mes de vencimiento las parcelas con vencimiento en [from, to].
	GetReceivablesByMonth(ctx context.Context, userID string, from, to time.Time) ([]MonthlyReceivableResult, error)
}
