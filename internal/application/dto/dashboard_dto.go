package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/analytics/dashboard.
type DashboardSummaryDTO struct {
	MonthlyGross      decimal.Decimal        `json:"monthly_gross"`
	MonthlyCommission decimal.Decimal        `json:"monthly_commission"`
	MonthlySales      int                    `json:"monthly_sales"`
	TopSuppliers      []SupplierRankingEntry `json:"top_suppliers"`
	Receivables       []MonthlyReceivableDTO `json:"receivables"`
	DateLabel         string                 `json:"date_label"` // ej: "Maio 2026"
}

// MonthlyReceivableDTO parcelas por mes de vencimiento (comisión a recibir).
type MonthlyReceivableDTO struct {
	Month        string          `json:"month"` // YYYY-MM
	Label        string          `json:"label"`
	Installments int             `json:"installments"`
	Amount       decimal.Decimal `json:"amount"`
	Commission   decimal.Decimal `json:"commission"`
}
