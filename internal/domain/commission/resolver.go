package commission

import (
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ResolveRate determina el porcentaje efectivo de comisión o impuesto de una línea.
// Cascada, gana la primera que aplique:
//  1. regla por faixas asignada al producto para el target;
//  2. tasa fija del producto para el target;
//  3. regla por faixas default de la pasta para el target;
//  4. tasa fija de la pasta (0 si no hay pasta).
//
// product y supplier pueden ser nil. La regla del producto se busca entre las
// reglas de la pasta.
func ResolveRate(target entity.RuleTarget, grossValue decimal.Decimal, product *entity.Product, supplier *entity.Supplier) decimal.Decimal {
	if product != nil {
		if rule := supplier.RuleByID(product.RuleID(target)); rule != nil && rule.Target == target {
			if tiers, ok := rule.Tiered(); ok {
				return LookupTier(tiers.Tiers(), grossValue)
			}
		}
		if rate := product.DefaultRate(target); rate != nil {
			return *rate
		}
	}
	if rule := supplier.DefaultRule(target); rule != nil {
		if tiers, ok := rule.Tiered(); ok {
			return LookupTier(tiers.Tiers(), grossValue)
		}
	}
	return supplier.DefaultRate(target)
}

// RefreshLine vuelve a resolver las tasas de una línea tras un cambio de valor o
// de producto. Las tasas editadas a mano se conservan.
func RefreshLine(line entity.SaleLineEntry, product *entity.Product, supplier *entity.Supplier) entity.SaleLineEntry {
	if !line.CommissionRateManual {
		line.CommissionRate = ResolveRate(entity.TargetCommission, line.GrossValue, product, supplier)
	}
	if !line.TaxRateManual {
		line.TaxRate = ResolveRate(entity.TargetTax, line.GrossValue, product, supplier)
	}
	return line
}

// SetGrossValue cambia el valor bruto y re-resuelve las tasas no manuales.
func SetGrossValue(line entity.SaleLineEntry, value decimal.Decimal, product *entity.Product, supplier *entity.Supplier) entity.SaleLineEntry {
	line.GrossValue = value
	return RefreshLine(line, product, supplier)
}

// SetProduct cambia el producto de la línea y re-resuelve las tasas no manuales.
func SetProduct(line entity.SaleLineEntry, product *entity.Product, supplier *entity.Supplier) entity.SaleLineEntry {
	line.ProductID = ""
	if product != nil {
		line.ProductID = product.ID
	}
	return RefreshLine(line, product, supplier)
}

// OverrideRate fija una tasa a mano; queda pegajosa frente a recálculos.
func OverrideRate(line entity.SaleLineEntry, target entity.RuleTarget, rate decimal.Decimal) entity.SaleLineEntry {
	switch target {
	case entity.TargetCommission:
		line.CommissionRate = rate
		line.CommissionRateManual = true
	case entity.TargetTax:
		line.TaxRate = rate
		line.TaxRateManual = true
	}
	return line
}
