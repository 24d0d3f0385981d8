// Package schedule convierte una condición de pago (contado, N parcelas regulares u
// offsets explícitos) en parcelas con fecha y valor, y hace la transformación inversa
// (fecha editada → offset, notación escrita → condición).
//
// PaymentTerm es la única fuente de verdad: fechas y notación se derivan al leer.
package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Límites de una condición de pago. Acotan la memoria de Offsets y evitan que
// FirstOffsetDays + i*IntervalDays desborde int.
const (
	MaxInstallments = 360
	MaxOffsetDays   = 36500
)

// Mode modo de pago.
type Mode string

const (
	ModeCash         Mode = "cash"
	ModeInstallments Mode = "installments"
)

// PaymentTerm condición de pago de una venta.
//
// Cash: OffsetDays días tras la venta. Installments: si DayOffsets no está vacío se usa
// tal cual (parcelas editadas a mano o notación irregular); si no, Count parcelas a partir
// de FirstOffsetDays separadas por IntervalDays.
type PaymentTerm struct {
	SaleDate        time.Time
	Mode            Mode
	OffsetDays      int
	Count           int
	IntervalDays    int
	FirstOffsetDays int
	DayOffsets      []int
}

// Installment parcela derivada (no se almacena en el término).
type Installment struct {
	Index            int
	OffsetDays       int
	DueDate          time.Time
	Amount           decimal.Decimal
	CommissionAmount decimal.Decimal
}

// Explicit indica si el término usa offsets explícitos.
func (t PaymentTerm) Explicit() bool {
	return t.Mode == ModeInstallments && len(t.DayOffsets) > 0
}

// Validate verifica los rangos de la condición de pago: ningún offset negativo ni
// mayor que MaxOffsetDays y a lo sumo MaxInstallments parcelas.
func (t PaymentTerm) Validate() error {
	switch t.Mode {
	case ModeCash:
		if t.OffsetDays < 0 || t.OffsetDays > MaxOffsetDays {
			return fmt.Errorf("%w: días de recibimiento fuera de [0, %d]", domain.ErrInvalidPaymentTerm, MaxOffsetDays)
		}
	case ModeInstallments:
		if t.Explicit() {
			if len(t.DayOffsets) > MaxInstallments {
				return fmt.Errorf("%w: más de %d parcelas", domain.ErrInvalidPaymentTerm, MaxInstallments)
			}
			for i, o := range t.DayOffsets {
				if o < 0 || o > MaxOffsetDays {
					return fmt.Errorf("%w: offset %d fuera de [0, %d]", domain.ErrInvalidPaymentTerm, i, MaxOffsetDays)
				}
			}
			return nil
		}
		if t.Count < 1 || t.Count > MaxInstallments {
			return fmt.Errorf("%w: cantidad de parcelas fuera de [1, %d]", domain.ErrInvalidPaymentTerm, MaxInstallments)
		}
		if t.IntervalDays < 0 || t.FirstOffsetDays < 0 {
			return fmt.Errorf("%w: intervalo u offset inicial negativo", domain.ErrInvalidPaymentTerm)
		}
		if t.IntervalDays > MaxOffsetDays || t.FirstOffsetDays > MaxOffsetDays ||
			t.FirstOffsetDays+(t.Count-1)*t.IntervalDays > MaxOffsetDays {
			return fmt.Errorf("%w: última parcela a más de %d días", domain.ErrInvalidPaymentTerm, MaxOffsetDays)
		}
	default:
		return fmt.Errorf("%w: modo %q", domain.ErrInvalidPaymentTerm, t.Mode)
	}
	return nil
}

// Offsets días tras la venta de cada parcela, en orden. Un término regular fuera de
// los límites de Validate no tiene parcelas.
func (t PaymentTerm) Offsets() []int {
	switch {
	case t.Mode == ModeCash:
		return []int{t.OffsetDays}
	case t.Explicit():
		out := make([]int, len(t.DayOffsets))
		copy(out, t.DayOffsets)
		return out
	}
	if t.Count < 1 || t.Count > MaxInstallments ||
		t.IntervalDays < 0 || t.IntervalDays > MaxOffsetDays ||
		t.FirstOffsetDays < 0 || t.FirstOffsetDays > MaxOffsetDays {
		return nil
	}
	out := make([]int, t.Count)
	for i := range out {
		out[i] = t.FirstOffsetDays + i*t.IntervalDays
	}
	return out
}

// DueDate fecha de vencimiento a offset días de la venta.
func DueDate(saleDate time.Time, offset int) time.Time {
	return saleDate.AddDate(0, 0, offset)
}

// DaysBetween días calendario entre la venta y la fecha, redondeado.
func DaysBetween(saleDate, date time.Time) int {
	a := time.Date(saleDate.Year(), saleDate.Month(), saleDate.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// BuildSchedule genera las parcelas. El valor se divide en partes iguales sin
// redistribuir el resto; la comisión de cada parcela es amount * pct/100 (0 si pct es nil).
func BuildSchedule(term PaymentTerm, totalValue decimal.Decimal, commissionPercentage *decimal.Decimal) []Installment {
	offsets := term.Offsets()
	if len(offsets) == 0 {
		return []Installment{}
	}
	amount := totalValue
	if len(offsets) > 1 {
		amount = totalValue.Div(decimal.NewFromInt(int64(len(offsets))))
	}
	commission := decimal.Zero
	if commissionPercentage != nil {
		commission = amount.Mul(*commissionPercentage).Div(decimal.NewFromInt(100))
	}
	out := make([]Installment, len(offsets))
	for i, o := range offsets {
		out[i] = Installment{
			Index:            i,
			OffsetDays:       o,
			DueDate:          DueDate(term.SaleDate, o),
			Amount:           amount,
			CommissionAmount: commission,
		}
	}
	return out
}

// EditDueDate cambia la fecha de una parcela. El término pasa a offsets explícitos:
// la parcela editada recibe los días hasta newDate y las demás conservan su offset.
// En contado solo existe la parcela 0 y se actualiza OffsetDays.
func EditDueDate(term PaymentTerm, index int, newDate time.Time) (PaymentTerm, error) {
	offsets := term.Offsets()
	if index < 0 || index >= len(offsets) {
		return term, fmt.Errorf("%w: %d de %d", domain.ErrInstallmentIndex, index, len(offsets))
	}
	days := DaysBetween(term.SaleDate, newDate)
	if days < 0 {
		return term, fmt.Errorf("%w: fecha anterior a la venta", domain.ErrInvalidPaymentTerm)
	}
	if days > MaxOffsetDays {
		return term, fmt.Errorf("%w: fecha a más de %d días de la venta", domain.ErrInvalidPaymentTerm, MaxOffsetDays)
	}
	if term.Mode == ModeCash {
		term.OffsetDays = days
		return term, nil
	}
	offsets[index] = days
	term.DayOffsets = offsets
	return term, nil
}

// FirstDueDate fecha de la primera parcela según la fecha de venta actual.
func FirstDueDate(term PaymentTerm) (time.Time, bool) {
	offsets := term.Offsets()
	if len(offsets) == 0 {
		return time.Time{}, false
	}
	return DueDate(term.SaleDate, offsets[0]), true
}

// WithFirstOffset fija los días hasta la primera parcela.
func WithFirstOffset(term PaymentTerm, days int) (PaymentTerm, error) {
	if days < 0 || days > MaxOffsetDays {
		return term, fmt.Errorf("%w: offset inicial fuera de [0, %d]", domain.ErrInvalidPaymentTerm, MaxOffsetDays)
	}
	switch {
	case term.Mode == ModeCash:
		term.OffsetDays = days
	case term.Explicit():
		offsets := term.Offsets()
		offsets[0] = days
		term.DayOffsets = offsets
	default:
		term.FirstOffsetDays = days
	}
	return term, nil
}

// WithFirstDueDate fija la fecha de la primera parcela recalculando su offset.
func WithFirstDueDate(term PaymentTerm, date time.Time) (PaymentTerm, error) {
	return WithFirstOffset(term, DaysBetween(term.SaleDate, date))
}

// WithSaleDate cambia la fecha de venta conservando los offsets; las fechas de las
// parcelas se mueven con ella.
func WithSaleDate(term PaymentTerm, saleDate time.Time) PaymentTerm {
	term.SaleDate = saleDate
	return term
}

// ApplyNotation aplica una notación escrita al término. Sin offsets válidos no cambia nada.
// Una secuencia regular creciente queda como término regular; cualquier otra se guarda
// tal cual en DayOffsets.
func ApplyNotation(term PaymentTerm, raw string, defaultInterval int) (PaymentTerm, Notation) {
	n := ParseNotation(raw, term.IntervalDays, defaultInterval)
	if n.Empty() {
		return term, n
	}
	term.Mode = ModeInstallments
	term.Count = len(n.Offsets)
	term.FirstOffsetDays = n.Offsets[0]
	term.IntervalDays = n.IntervalGuess
	term.DayOffsets = nil
	if n.Irregular || (len(n.Offsets) >= 2 && n.Offsets[1]-n.Offsets[0] != n.IntervalGuess) {
		term.DayOffsets = append([]int(nil), n.Offsets...)
	}
	return term, n
}

// NotationOf notación resumida del término.
func NotationOf(term PaymentTerm) string {
	return SummarizeNotation(term.Offsets())
}
