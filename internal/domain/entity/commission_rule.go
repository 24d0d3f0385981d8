package entity

import (
	"fmt"
	"time"

	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/shopspring/decimal"
)

// RuleTarget indica a qué tasa aplica una regla.
type RuleTarget string

const (
	TargetCommission RuleTarget = "commission"
	TargetTax        RuleTarget = "tax"
)

// Valid indica si el target es uno de los conocidos.
func (t RuleTarget) Valid() bool {
	return t == TargetCommission || t == TargetTax
}

// Tier faixa de valor [Min, Max] con su porcentaje. Max nil = sin límite superior.
type Tier struct {
	Min        decimal.Decimal
	Max        *decimal.Decimal
	Percentage decimal.Decimal
}

// TierList lista ordenada de faixas. Solo se construye con NewTierList, que garantiza
// que las faixas son contiguas (min[i] == max[i-1]) y que la última no tiene máximo.
type TierList struct {
	tiers []Tier
}

// NewTierList valida y construye una lista de faixas.
func NewTierList(tiers []Tier) (TierList, error) {
	if len(tiers) == 0 {
		return TierList{}, fmt.Errorf("%w: sin faixas", domain.ErrInvalidTierList)
	}
	last := len(tiers) - 1
	for i, t := range tiers {
		if t.Percentage.IsNegative() {
			return TierList{}, fmt.Errorf("%w: faixa %d con porcentaje negativo", domain.ErrInvalidTierList, i)
		}
		if i < last && t.Max == nil {
			return TierList{}, fmt.Errorf("%w: solo la última faixa puede no tener máximo", domain.ErrInvalidTierList)
		}
		if i == last && t.Max != nil {
			return TierList{}, fmt.Errorf("%w: la última faixa debe quedar abierta", domain.ErrInvalidTierList)
		}
		if t.Max != nil && t.Min.GreaterThan(*t.Max) {
			return TierList{}, fmt.Errorf("%w: faixa %d con min > max", domain.ErrInvalidTierList, i)
		}
		if i > 0 && !t.Min.Equal(*tiers[i-1].Max) {
			return TierList{}, fmt.Errorf("%w: faixa %d no comienza donde termina la anterior", domain.ErrInvalidTierList, i)
		}
	}
	cp := make([]Tier, len(tiers))
	copy(cp, tiers)
	return TierList{tiers: cp}, nil
}

// Tiers devuelve una copia de las faixas en orden.
func (l TierList) Tiers() []Tier {
	cp := make([]Tier, len(l.tiers))
	copy(cp, l.tiers)
	return cp
}

// Len cantidad de faixas.
func (l TierList) Len() int { return len(l.tiers) }

// RuleKind es el tipo suma de una regla: FixedRate | TieredRate.
type RuleKind interface {
	kindName() string
}

// FixedRate porcentaje fijo.
type FixedRate struct {
	Percentage decimal.Decimal
}

// TieredRate porcentaje por faixas de valor.
type TieredRate struct {
	Tiers TierList
}

func (FixedRate) kindName() string  { return RuleKindFixed }
func (TieredRate) kindName() string { return RuleKindTiered }

// Nombres persistidos del tipo de regla.
const (
	RuleKindFixed  = "fixed"
	RuleKindTiered = "tiered"
)

// KindName devuelve "fixed" o "tiered" (vacío si la regla no tiene tipo).
func KindName(k RuleKind) string {
	if k == nil {
		return ""
	}
	return k.kindName()
}

// CommissionRule regla de comisión o impuesto de una pasta (Supplier).
// Como máximo una regla IsDefault por (pasta, target).
type CommissionRule struct {
	ID         string
	SupplierID string
	Name       string
	Target     RuleTarget
	IsDefault  bool
	Kind       RuleKind
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Tiered devuelve las faixas si la regla es por faixas.
func (r *CommissionRule) Tiered() (TierList, bool) {
	if r == nil {
		return TierList{}, false
	}
	t, ok := r.Kind.(TieredRate)
	return t.Tiers, ok
}
