package commission_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/commission"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
)

func TestComputeTotals_ModoDetallado(t *testing.T) {
	lines := []entity.SaleLineEntry{
		{Quantity: d("2"), GrossValue: d("100"), TaxRate: d("10"), CommissionRate: d("20")},
	}
	got := commission.ComputeTotals(lines, true)

	assert.True(t, d("200").Equal(got.TotalGross), "bruto: %s", got.TotalGross)
	assert.True(t, d("180").Equal(got.NetBase), "base neta: %s", got.NetBase)
	assert.True(t, d("36").Equal(got.TotalCommission), "comisión: %s", got.TotalCommission)
}

func TestComputeTotals_ModoSimpleIgnoraCantidad(t *testing.T) {
	lines := []entity.SaleLineEntry{
		{Quantity: d("5"), GrossValue: d("100"), TaxRate: d("0"), CommissionRate: d("10")},
		{Quantity: d("3"), GrossValue: d("50"), TaxRate: d("20"), CommissionRate: d("5")},
	}
	got := commission.ComputeTotals(lines, false)

	assert.True(t, d("150").Equal(got.TotalGross))
	assert.True(t, d("140").Equal(got.NetBase))
	assert.True(t, d("12").Equal(got.TotalCommission))
}

func TestComputeTotals_SinLineas(t *testing.T) {
	got := commission.ComputeTotals(nil, true)
	assert.True(t, got.TotalGross.IsZero())
	assert.True(t, got.NetBase.IsZero())
	assert.True(t, got.TotalCommission.IsZero())
}

func TestValidateLines(t *testing.T) {
	ok := []entity.SaleLineEntry{{Quantity: d("1"), GrossValue: d("0")}}
	require.NoError(t, commission.ValidateLines(ok, true))

	negGross := []entity.SaleLineEntry{{Quantity: d("1"), GrossValue: d("-1")}}
	err := commission.ValidateLines(negGross, false)
	assert.True(t, errors.Is(err, domain.ErrNegativeLine))

	negQty := []entity.SaleLineEntry{{Quantity: d("-2"), GrossValue: d("10")}}
	assert.Error(t, commission.ValidateLines(negQty, true))
	assert.NoError(t, commission.ValidateLines(negQty, false), "en modo simple la cantidad no se usa")
}
