package sales

import (
	"fmt"

	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/schedule"
	"github.com/jhoicas/Comissoes-api/pkg/logger"
)

// ScheduleUseCase operaciones sin estado sobre condiciones de pago.
type ScheduleUseCase struct {
	defaultInterval int
	log             *logger.Logger
}

// NewScheduleUseCase construye el caso de uso. defaultInterval <= 0 usa 30 días.
func NewScheduleUseCase(defaultInterval int, log *logger.Logger) *ScheduleUseCase {
	if defaultInterval <= 0 {
		defaultInterval = schedule.DefaultIntervalDays
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ScheduleUseCase{defaultInterval: defaultInterval, log: log}
}

// ParseNotation interpreta una notación escrita ("30/60/90", "10 20 30").
func (uc *ScheduleUseCase) ParseNotation(in dto.ParseNotationRequest) dto.ParseNotationResponse {
	n := schedule.ParseNotation(in.Notation, in.CurrentInterval, uc.defaultInterval)
	offsets := n.Offsets
	if offsets == nil {
		offsets = []int{}
	}
	if n.Irregular {
		uc.log.Debug().Ints("intervalos", n.Intervals).Msg("notación irregular")
	}
	return dto.ParseNotationResponse{
		Offsets:       offsets,
		IntervalGuess: n.IntervalGuess,
		Irregular:     n.Irregular,
		Intervals:     n.Intervals,
		Warning:       n.Warning(),
		Summary:       schedule.SummarizeNotation(n.Offsets),
	}
}

// EditDueDate cambia la fecha de la parcela Index (base 0) y devuelve el término
// resultante, siempre con offsets explícitos salvo en contado.
func (uc *ScheduleUseCase) EditDueDate(in dto.EditDueDateRequest) (*dto.ScheduleResponse, error) {
	saleDate, err := parseDate("sale_date", in.SaleDate)
	if err != nil {
		return nil, err
	}
	newDate, err := parseDate("due_date", in.DueDate)
	if err != nil {
		return nil, err
	}
	if in.TotalValue.IsNegative() {
		return nil, fmt.Errorf("%w: total_value negativo", domain.ErrInvalidInput)
	}
	term, _ := toPaymentTerm(saleDate, in.Payment, uc.defaultInterval)
	if err := term.Validate(); err != nil {
		return nil, err
	}
	term, err = schedule.EditDueDate(term, in.Index, newDate)
	if err != nil {
		return nil, err
	}
	payment := toPaymentTermDTO(term)
	return &dto.ScheduleResponse{
		Payment:      payment,
		Installments: toInstallmentResponses(schedule.BuildSchedule(term, in.TotalValue, in.CommissionPercentage)),
		Notation:     payment.Notation,
	}, nil
}
