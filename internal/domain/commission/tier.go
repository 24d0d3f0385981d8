// Package commission contiene el motor puro de tasas: búsqueda por faixas,
// cascada de resolución de comisión/impuesto y agregación de totales.
// No accede a red ni a base de datos.
package commission

import (
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LookupTier devuelve el porcentaje de la primera faixa (en orden) que contiene value:
// value >= Min y (Max nil o value <= Max). Si ninguna contiene el valor se usa la
// última faixa; lista vacía → 0. No valida contigüidad (eso lo hace entity.NewTierList).
func LookupTier(tiers []entity.Tier, value decimal.Decimal) decimal.Decimal {
	if len(tiers) == 0 {
		return decimal.Zero
	}
	for _, t := range tiers {
		if value.LessThan(t.Min) {
			continue
		}
		if t.Max == nil || value.LessThanOrEqual(*t.Max) {
			return t.Percentage
		}
	}
	return tiers[len(tiers)-1].Percentage
}
