package commission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comissoes-api/internal/domain/commission"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
)

const (
	ruleProductTiered = "rule-product-tiered"
	ruleSupplierDef   = "rule-supplier-default"
	ruleProductFixed  = "rule-product-fixed"
)

// fixture arma una pasta con reglas y un producto según los flags.
type fixture struct {
	productTiered   bool
	productFixed    bool
	supplierTiered  bool
	supplierPresent bool
}

func (f fixture) build(t *testing.T) (*entity.Product, *entity.Supplier) {
	t.Helper()
	productTiers, err := entity.NewTierList([]entity.Tier{
		{Min: d("0"), Max: dp("1000"), Percentage: d("11")},
		{Min: d("1000"), Max: nil, Percentage: d("12")},
	})
	require.NoError(t, err)
	supplierTiers, err := entity.NewTierList([]entity.Tier{
		{Min: d("0"), Max: dp("1000"), Percentage: d("21")},
		{Min: d("1000"), Max: nil, Percentage: d("22")},
	})
	require.NoError(t, err)

	product := &entity.Product{ID: "p1", SupplierID: "s1"}
	if f.productTiered {
		id := ruleProductTiered
		product.CommissionRuleID = &id
	}
	if f.productFixed {
		product.DefaultCommissionRate = dp("30")
	}

	if !f.supplierPresent {
		return product, nil
	}
	supplier := &entity.Supplier{
		ID:                    "s1",
		DefaultCommissionRate: d("40"),
		DefaultTaxRate:        d("9"),
		Rules: []entity.CommissionRule{
			{ID: ruleProductTiered, SupplierID: "s1", Target: entity.TargetCommission, Kind: entity.TieredRate{Tiers: productTiers}},
		},
	}
	if f.supplierTiered {
		supplier.Rules = append(supplier.Rules, entity.CommissionRule{
			ID: ruleSupplierDef, SupplierID: "s1", Target: entity.TargetCommission, IsDefault: true,
			Kind: entity.TieredRate{Tiers: supplierTiers},
		})
	}
	return product, supplier
}

// ── Cascada ───────────────────────────────────────────────────────────────────

func TestResolveRate_PrecedenciaEstricta(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		f := fixture{
			productTiered:   mask&1 != 0,
			productFixed:    mask&2 != 0,
			supplierTiered:  mask&4 != 0,
			supplierPresent: mask&8 != 0,
		}
		product, supplier := f.build(t)
		got := commission.ResolveRate(entity.TargetCommission, d("500"), product, supplier)

		var want string
		switch {
		case f.productTiered && f.supplierPresent:
			want = "11"
		case f.productFixed:
			want = "30"
		case f.supplierTiered && f.supplierPresent:
			want = "21"
		case f.supplierPresent:
			want = "40"
		default:
			want = "0"
		}
		assert.True(t, d(want).Equal(got), "combinación %+v: esperado %s, obtenido %s", f, want, got)
	}
}

func TestResolveRate_ReglaFijaDelProductoNoEsPaso1(t *testing.T) {
	supplier := &entity.Supplier{
		ID:                    "s1",
		DefaultCommissionRate: d("4"),
		Rules: []entity.CommissionRule{
			{ID: ruleProductFixed, SupplierID: "s1", Target: entity.TargetCommission, Kind: entity.FixedRate{Percentage: d("99")}},
		},
	}
	id := ruleProductFixed
	product := &entity.Product{ID: "p1", CommissionRuleID: &id, DefaultCommissionRate: dp("6")}

	got := commission.ResolveRate(entity.TargetCommission, d("10"), product, supplier)
	assert.True(t, d("6").Equal(got))
}

func TestResolveRate_SinProductoNiPastaDevuelveCero(t *testing.T) {
	assert.True(t, commission.ResolveRate(entity.TargetTax, d("100"), nil, nil).IsZero())
}

func TestResolveRate_TargetImpuestoIndependiente(t *testing.T) {
	product, supplier := fixture{productTiered: true, supplierPresent: true}.build(t)
	got := commission.ResolveRate(entity.TargetTax, d("500"), product, supplier)
	assert.True(t, d("9").Equal(got), "la regla de comisión no debe aplicar al impuesto")
}

func TestResolveRate_Idempotente(t *testing.T) {
	product, supplier := fixture{productTiered: true, supplierPresent: true}.build(t)
	a := commission.ResolveRate(entity.TargetCommission, d("700"), product, supplier)
	b := commission.ResolveRate(entity.TargetCommission, d("700"), product, supplier)
	assert.True(t, a.Equal(b))
}

func TestResolveRate_CambioDeValorSoloImportaAlCruzarFaixa(t *testing.T) {
	product, supplier := fixture{productTiered: true, supplierPresent: true}.build(t)
	base := commission.ResolveRate(entity.TargetCommission, d("200"), product, supplier)

	same := commission.ResolveRate(entity.TargetCommission, d("999"), product, supplier)
	assert.True(t, base.Equal(same))

	crossed := commission.ResolveRate(entity.TargetCommission, d("1500"), product, supplier)
	assert.False(t, base.Equal(crossed))
	assert.True(t, d("12").Equal(crossed))
}

// ── Recalculo de líneas ───────────────────────────────────────────────────────

func TestSetGrossValue_RecalculaTasasNoManuales(t *testing.T) {
	product, supplier := fixture{productTiered: true, supplierPresent: true}.build(t)
	line := commission.SetProduct(entity.SaleLineEntry{GrossValue: d("100")}, product, supplier)
	assert.True(t, d("11").Equal(line.CommissionRate))
	assert.Equal(t, "p1", line.ProductID)

	line = commission.SetGrossValue(line, d("2000"), product, supplier)
	assert.True(t, d("12").Equal(line.CommissionRate), "la tasa por faixas no es pegajosa")
}

func TestOverrideRate_EsPegajosa(t *testing.T) {
	product, supplier := fixture{productTiered: true, supplierPresent: true}.build(t)
	line := commission.SetProduct(entity.SaleLineEntry{GrossValue: d("100")}, product, supplier)
	line = commission.OverrideRate(line, entity.TargetCommission, d("15"))

	line = commission.SetGrossValue(line, d("2000"), product, supplier)
	assert.True(t, d("15").Equal(line.CommissionRate), "la tasa editada a mano se conserva")
	assert.True(t, d("9").Equal(line.TaxRate), "el impuesto sigue resolviéndose")
}
