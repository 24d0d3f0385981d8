package schedule_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/schedule"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func day(y int, m time.Month, dd int) time.Time {
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func pct(v string) *decimal.Decimal {
	x := dec(v)
	return &x
}

func offsetsFromDates(saleDate time.Time, items []schedule.Installment) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = schedule.DaysBetween(saleDate, it.DueDate)
	}
	return out
}

// ── BuildSchedule ─────────────────────────────────────────────────────────────

func TestBuildSchedule_ContadoOffsetCero(t *testing.T) {
	sale := day(2024, time.March, 10)
	term := schedule.PaymentTerm{SaleDate: sale, Mode: schedule.ModeCash}

	got := schedule.BuildSchedule(term, dec("1500"), pct("10"))
	require.Len(t, got, 1)
	assert.True(t, got[0].DueDate.Equal(sale))
	assert.True(t, dec("1500").Equal(got[0].Amount))
	assert.True(t, dec("150").Equal(got[0].CommissionAmount))
}

func TestBuildSchedule_ContadoSinComision(t *testing.T) {
	sale := day(2024, time.March, 10)
	term := schedule.PaymentTerm{SaleDate: sale, Mode: schedule.ModeCash, OffsetDays: 7}

	got := schedule.BuildSchedule(term, dec("100"), nil)
	require.Len(t, got, 1)
	assert.True(t, got[0].DueDate.Equal(day(2024, time.March, 17)))
	assert.True(t, got[0].CommissionAmount.IsZero())
}

func TestBuildSchedule_Regular(t *testing.T) {
	sale := day(2024, time.January, 31)
	term := schedule.PaymentTerm{
		SaleDate: sale, Mode: schedule.ModeInstallments,
		Count: 3, IntervalDays: 30, FirstOffsetDays: 30,
	}
	got := schedule.BuildSchedule(term, dec("900"), pct("5"))
	require.Len(t, got, 3)
	for i, it := range got {
		assert.Equal(t, i, it.Index)
		assert.Equal(t, 30*(i+1), it.OffsetDays)
		assert.True(t, dec("300").Equal(it.Amount))
		assert.True(t, dec("15").Equal(it.CommissionAmount))
	}
	assert.True(t, got[0].DueDate.Equal(day(2024, time.March, 1)))
	assert.True(t, got[2].DueDate.Equal(day(2024, time.April, 30)))
}

func TestBuildSchedule_Explicito(t *testing.T) {
	sale := day(2024, time.May, 1)
	term := schedule.PaymentTerm{SaleDate: sale, Mode: schedule.ModeInstallments, DayOffsets: []int{45, 10, 90}}
	got := schedule.BuildSchedule(term, dec("300"), nil)
	require.Len(t, got, 3)
	assert.Equal(t, []int{45, 10, 90}, offsetsFromDates(sale, got), "se respeta el orden dado")
	assert.True(t, dec("100").Equal(got[1].Amount))
}

func TestBuildSchedule_RoundTripOffsets(t *testing.T) {
	sale := day(2024, time.February, 29)
	for _, term := range []schedule.PaymentTerm{
		{SaleDate: sale, Mode: schedule.ModeInstallments, Count: 12, IntervalDays: 30, FirstOffsetDays: 0},
		{SaleDate: sale, Mode: schedule.ModeInstallments, Count: 4, IntervalDays: 28, FirstOffsetDays: 15},
		{SaleDate: sale, Mode: schedule.ModeInstallments, Count: 1, IntervalDays: 0, FirstOffsetDays: 365},
	} {
		got := schedule.BuildSchedule(term, dec("1000"), nil)
		assert.Equal(t, term.Offsets(), offsetsFromDates(sale, got))
	}
}

// ── EditDueDate ───────────────────────────────────────────────────────────────

func TestEditDueDate_PasaAExplicitoEsIdempotente(t *testing.T) {
	sale := day(2024, time.June, 1)
	term := schedule.PaymentTerm{SaleDate: sale, Mode: schedule.ModeInstallments, Count: 3, IntervalDays: 30, FirstOffsetDays: 30}

	edited, err := schedule.EditDueDate(term, 1, day(2024, time.August, 5))
	require.NoError(t, err)
	assert.True(t, edited.Explicit())
	assert.Equal(t, []int{30, 65, 90}, edited.DayOffsets)

	items := schedule.BuildSchedule(edited, dec("300"), nil)
	assert.Equal(t, edited.DayOffsets, offsetsFromDates(sale, items))

	again, err := schedule.EditDueDate(edited, 1, items[1].DueDate)
	require.NoError(t, err)
	assert.Equal(t, edited.DayOffsets, again.DayOffsets)
}

func TestEditDueDate_NoMutaElOriginal(t *testing.T) {
	sale := day(2024, time.June, 1)
	term := schedule.PaymentTerm{SaleDate: sale, Mode: schedule.ModeInstallments, DayOffsets: []int{10, 20}}
	_, err := schedule.EditDueDate(term, 0, day(2024, time.June, 6))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, term.DayOffsets)
}

func TestEditDueDate_IndiceFueraDeRango(t *testing.T) {
	term := schedule.PaymentTerm{SaleDate: day(2024, 1, 1), Mode: schedule.ModeInstallments, Count: 2, IntervalDays: 30}
	_, err := schedule.EditDueDate(term, 2, day(2024, 3, 1))
	assert.True(t, errors.Is(err, domain.ErrInstallmentIndex))
}

func TestEditDueDate_FechaAnteriorALaVenta(t *testing.T) {
	term := schedule.PaymentTerm{SaleDate: day(2024, 1, 10), Mode: schedule.ModeInstallments, Count: 2, IntervalDays: 30}
	_, err := schedule.EditDueDate(term, 0, day(2024, 1, 1))
	assert.True(t, errors.Is(err, domain.ErrInvalidPaymentTerm))
}

func TestEditDueDate_Contado(t *testing.T) {
	term := schedule.PaymentTerm{SaleDate: day(2024, 1, 10), Mode: schedule.ModeCash}
	edited, err := schedule.EditDueDate(term, 0, day(2024, 1, 20))
	require.NoError(t, err)
	assert.Equal(t, 10, edited.OffsetDays)
}

// ── Sincronización fecha ↔ offset ─────────────────────────────────────────────

func TestWithFirstDueDate_RecalculaOffset(t *testing.T) {
	term := schedule.PaymentTerm{SaleDate: day(2024, 1, 1), Mode: schedule.ModeInstallments, Count: 2, IntervalDays: 30, FirstOffsetDays: 30}
	got, err := schedule.WithFirstDueDate(term, day(2024, 1, 16))
	require.NoError(t, err)
	assert.Equal(t, 15, got.FirstOffsetDays)
	assert.Equal(t, []int{15, 45}, got.Offsets())
}

func TestWithFirstOffset_RecalculaFecha(t *testing.T) {
	term := schedule.PaymentTerm{SaleDate: day(2024, 1, 1), Mode: schedule.ModeInstallments, DayOffsets: []int{30, 50}}
	got, err := schedule.WithFirstOffset(term, 20)
	require.NoError(t, err)
	first, ok := schedule.FirstDueDate(got)
	require.True(t, ok)
	assert.True(t, first.Equal(day(2024, 1, 21)))
	assert.Equal(t, []int{20, 50}, got.DayOffsets)
}

func TestWithSaleDate_ConservaOffset(t *testing.T) {
	term := schedule.PaymentTerm{SaleDate: day(2024, 1, 1), Mode: schedule.ModeInstallments, Count: 1, FirstOffsetDays: 30}
	moved := schedule.WithSaleDate(term, day(2024, 2, 1))
	assert.Equal(t, 30, moved.FirstOffsetDays)
	first, _ := schedule.FirstDueDate(moved)
	assert.True(t, first.Equal(day(2024, 3, 2)))
}

// ── ApplyNotation / Validate ──────────────────────────────────────────────────

func TestApplyNotation_RegularQuedaComoSpec(t *testing.T) {
	term := schedule.PaymentTerm{SaleDate: day(2024, 1, 1), Mode: schedule.ModeCash}
	got, n := schedule.ApplyNotation(term, "30/60/90", 30)
	assert.False(t, n.Irregular)
	assert.Equal(t, schedule.ModeInstallments, got.Mode)
	assert.False(t, got.Explicit())
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, []int{30, 60, 90}, got.Offsets())
	assert.Equal(t, "30/60/90", schedule.NotationOf(got))
}

func TestApplyNotation_IrregularQuedaExplicito(t *testing.T) {
	term := schedule.PaymentTerm{SaleDate: day(2024, 1, 1), Mode: schedule.ModeInstallments, Count: 2, IntervalDays: 30}
	got, n := schedule.ApplyNotation(term, "30/45/90", 30)
	assert.True(t, n.Irregular)
	assert.True(t, got.Explicit())
	assert.Equal(t, []int{30, 45, 90}, got.Offsets())
}

func TestApplyNotation_DecrecienteSeConservaVerbatim(t *testing.T) {
	term := schedule.PaymentTerm{SaleDate: day(2024, 1, 1), Mode: schedule.ModeInstallments, Count: 1}
	got, _ := schedule.ApplyNotation(term, "90/60/30", 30)
	assert.Equal(t, []int{90, 60, 30}, got.Offsets())
}

func TestApplyNotation_VaciaNoCambia(t *testing.T) {
	term := schedule.PaymentTerm{SaleDate: day(2024, 1, 1), Mode: schedule.ModeInstallments, Count: 2, IntervalDays: 30}
	got, n := schedule.ApplyNotation(term, "abc", 30)
	assert.True(t, n.Empty())
	assert.Equal(t, term, got)
}

func TestPaymentTerm_Validate(t *testing.T) {
	valid := []schedule.PaymentTerm{
		{Mode: schedule.ModeCash},
		{Mode: schedule.ModeInstallments, Count: 1},
		{Mode: schedule.ModeInstallments, DayOffsets: []int{0, 10}},
		{Mode: schedule.ModeInstallments, Count: schedule.MaxInstallments, IntervalDays: 100},
		{Mode: schedule.ModeCash, OffsetDays: schedule.MaxOffsetDays},
	}
	for _, term := range valid {
		assert.NoError(t, term.Validate())
	}
	invalid := []schedule.PaymentTerm{
		{Mode: schedule.ModeCash, OffsetDays: -1},
		{Mode: schedule.ModeInstallments, Count: 0},
		{Mode: schedule.ModeInstallments, Count: 2, IntervalDays: -5},
		{Mode: schedule.ModeInstallments, DayOffsets: []int{10, -1}},
		{Mode: "credito"},
		{Mode: schedule.ModeCash, OffsetDays: schedule.MaxOffsetDays + 1},
		{Mode: schedule.ModeInstallments, Count: schedule.MaxInstallments + 1, IntervalDays: 1},
		{Mode: schedule.ModeInstallments, Count: math.MaxInt, IntervalDays: 30, FirstOffsetDays: 30},
		{Mode: schedule.ModeInstallments, Count: 3, IntervalDays: math.MaxInt / 2, FirstOffsetDays: 30},
		{Mode: schedule.ModeInstallments, Count: 2, FirstOffsetDays: schedule.MaxOffsetDays + 1},
		{Mode: schedule.ModeInstallments, Count: 12, IntervalDays: 5000},
		{Mode: schedule.ModeInstallments, DayOffsets: []int{30, schedule.MaxOffsetDays + 1}},
		{Mode: schedule.ModeInstallments, DayOffsets: make([]int, schedule.MaxInstallments+1)},
	}
	for _, term := range invalid {
		assert.ErrorIs(t, term.Validate(), domain.ErrInvalidPaymentTerm)
	}
}

func TestBuildSchedule_TerminoFueraDeRangoNoGeneraParcelas(t *testing.T) {
	sale := day(2025, 1, 10)
	for _, term := range []schedule.PaymentTerm{
		{SaleDate: sale, Mode: schedule.ModeInstallments, Count: math.MaxInt, IntervalDays: 30, FirstOffsetDays: 30},
		{SaleDate: sale, Mode: schedule.ModeInstallments, Count: 3, IntervalDays: math.MaxInt / 2, FirstOffsetDays: 30},
	} {
		assert.NotPanics(t, func() {
			assert.Empty(t, schedule.BuildSchedule(term, decimal.NewFromInt(300), nil))
		})
	}
}

func TestEditDueDate_FechaDemasiadoLejana(t *testing.T) {
	term := schedule.PaymentTerm{SaleDate: day(2025, 1, 10), Mode: schedule.ModeInstallments, Count: 2, IntervalDays: 30, FirstOffsetDays: 30}
	_, err := schedule.EditDueDate(term, 1, day(2200, 1, 1))
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentTerm)

	_, err = schedule.WithFirstOffset(term, schedule.MaxOffsetDays+1)
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentTerm)
}
