package commission

import (
	"fmt"

	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Totals agregados de las líneas de una venta.
type Totals struct {
	TotalGross      decimal.Decimal
	NetBase         decimal.Decimal
	TotalCommission decimal.Decimal
}

// UnitQty cantidad efectiva de la línea: la cantidad en modo detallado, 1 en modo simple.
func UnitQty(line entity.SaleLineEntry, detailed bool) decimal.Decimal {
	if detailed {
		return line.Quantity
	}
	return decimal.NewFromInt(1)
}

// ComputeTotals suma bruto, base neta (bruto sin impuesto) y comisión sobre la base neta.
//
//	gross      = Σ qty * gross
//	netBase    = Σ qty * gross * (1 - tax/100)
//	commission = Σ qty * gross * (1 - tax/100) * commission/100
//
// Las líneas deben venir validadas (ValidateLines).
func ComputeTotals(lines []entity.SaleLineEntry, detailed bool) Totals {
	t := Totals{TotalGross: decimal.Zero, NetBase: decimal.Zero, TotalCommission: decimal.Zero}
	for _, l := range lines {
		gross := UnitQty(l, detailed).Mul(l.GrossValue)
		net := gross.Mul(decimal.NewFromInt(1).Sub(l.TaxRate.Div(hundred)))
		t.TotalGross = t.TotalGross.Add(gross)
		t.NetBase = t.NetBase.Add(net)
		t.TotalCommission = t.TotalCommission.Add(net.Mul(l.CommissionRate).Div(hundred))
	}
	return t
}

// ValidateLines rechaza cantidades (modo detallado) o valores negativos antes de totalizar.
func ValidateLines(lines []entity.SaleLineEntry, detailed bool) error {
	for i, l := range lines {
		if l.GrossValue.IsNegative() {
			return fmt.Errorf("%w: línea %d valor bruto %s", domain.ErrNegativeLine, i, l.GrossValue)
		}
		if detailed && l.Quantity.IsNegative() {
			return fmt.Errorf("%w: línea %d cantidad %s", domain.ErrNegativeLine, i, l.Quantity)
		}
	}
	return nil
}
