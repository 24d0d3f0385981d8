package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modos de captura de una venta.
const (
	SaleModeSimple   = "simple"   // cada línea es un monto con cantidad implícita 1
	SaleModeDetailed = "detailed" // cada línea es un producto con su cantidad
)

// SaleLineEntry línea borrador de una venta. Las tasas se resuelven con el motor
// salvo que el usuario las haya editado a mano (CommissionRateManual / TaxRateManual).
type SaleLineEntry struct {
	ProductID            string
	Quantity             decimal.Decimal
	GrossValue           decimal.Decimal
	TaxRate              decimal.Decimal
	CommissionRate       decimal.Decimal
	TaxRateManual        bool
	CommissionRateManual bool
}

// Sale instantánea persistida de una venta.
type Sale struct {
	ID              string
	UserID          string
	SupplierID      string
	ClientID        string
	Mode            string
	SaleDate        time.Time
	PaymentNotation string
	TotalGross      decimal.Decimal
	NetBase         decimal.Decimal
	TotalCommission decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SaleItem línea aplanada de una venta persistida.
type SaleItem struct {
	ID             string
	SaleID         string
	ProductID      string
	Quantity       decimal.Decimal
	GrossValue     decimal.Decimal
	TaxRate        decimal.Decimal
	CommissionRate decimal.Decimal
}

// SaleInstallment parcela persistida de una venta.
type SaleInstallment struct {
	ID               string
	SaleID           string
	Number           int
	OffsetDays       int
	DueDate          time.Time
	Amount           decimal.Decimal
	CommissionAmount decimal.Decimal
}
