package dto

import "github.com/shopspring/decimal"

// PeriodDTO período consultado (YYYY-MM-DD).
type PeriodDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// CommissionRankingDTO respuesta de GET /api/analytics/commission-ranking.
type CommissionRankingDTO struct {
	Period          PeriodDTO              `json:"period"`
	TotalGross      decimal.Decimal        `json:"total_gross"`
	TotalCommission decimal.Decimal        `json:"total_commission"`
	Items           []SupplierRankingEntry `json:"items"`
}

// SupplierRankingEntry comisión de una pasta; SupplierID vacío = bucket "Outras".
type SupplierRankingEntry struct {
	Rank       int             `json:"rank"`
	SupplierID string          `json:"supplier_id,omitempty"`
	Name       string          `json:"name"`
	Commission decimal.Decimal `json:"commission"`
	Share      decimal.Decimal `json:"share"` // % del total
}
