package dto

import "github.com/shopspring/decimal"

// ParseNotationRequest entrada para interpretar una notación tipo "30/60/90".
type ParseNotationRequest struct {
	Notation        string `json:"notation"`
	CurrentInterval int    `json:"current_interval"`
}

// ParseNotationResponse resultado del parser.
type ParseNotationResponse struct {
	Offsets       []int  `json:"offsets"`
	IntervalGuess int    `json:"interval_guess"`
	Irregular     bool   `json:"irregular"`
	Intervals     []int  `json:"intervals,omitempty"`
	Warning       string `json:"warning,omitempty"`
	Summary       string `json:"summary"`
}

// EditDueDateRequest cambio de fecha de una parcela (transformación inversa).
type EditDueDateRequest struct {
	SaleDate             string           `json:"sale_date"`
	Payment              PaymentTermDTO   `json:"payment"`
	Index                int              `json:"index"`
	DueDate              string           `json:"due_date"`
	TotalValue           decimal.Decimal  `json:"total_value"`
	CommissionPercentage *decimal.Decimal `json:"commission_percentage"`
}

// ScheduleResponse término normalizado con sus parcelas.
type ScheduleResponse struct {
	Payment      PaymentTermDTO        `json:"payment"`
	Installments []InstallmentResponse `json:"installments"`
	Notation     string                `json:"notation"`
}
