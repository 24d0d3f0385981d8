package sales

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/schedule"
)

// parseDate interpreta una fecha YYYY-MM-DD de la API.
func parseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s debe tener formato %s", domain.ErrInvalidInput, field, dto.DateLayout)
	}
	return t, nil
}

// toPaymentTerm arma el término desde el DTO y, si viene, aplica la notación escrita.
func toPaymentTerm(saleDate time.Time, in dto.PaymentTermDTO, defaultInterval int) (schedule.PaymentTerm, schedule.Notation) {
	mode := schedule.Mode(in.Mode)
	if mode == "" {
		mode = schedule.ModeCash
	}
	term := schedule.PaymentTerm{
		SaleDate:        saleDate,
		Mode:            mode,
		OffsetDays:      in.OffsetDays,
		Count:           in.Count,
		IntervalDays:    in.IntervalDays,
		FirstOffsetDays: in.FirstOffsetDays,
	}
	if len(in.DayOffsets) > 0 {
		term.DayOffsets = append([]int(nil), in.DayOffsets...)
	}
	if strings.TrimSpace(in.Notation) == "" {
		return term, schedule.Notation{}
	}
	return schedule.ApplyNotation(term, in.Notation, defaultInterval)
}

func toPaymentTermDTO(term schedule.PaymentTerm) dto.PaymentTermDTO {
	out := dto.PaymentTermDTO{
		Mode:            string(term.Mode),
		OffsetDays:      term.OffsetDays,
		Count:           term.Count,
		IntervalDays:    term.IntervalDays,
		FirstOffsetDays: term.FirstOffsetDays,
		Notation:        schedule.NotationOf(term),
	}
	if term.Explicit() {
		out.DayOffsets = append([]int(nil), term.DayOffsets...)
	}
	return out
}

func toInstallmentResponses(in []schedule.Installment) []dto.InstallmentResponse {
	out := make([]dto.InstallmentResponse, len(in))
	for i, inst := range in {
		out[i] = dto.InstallmentResponse{
			Number:           inst.Index + 1,
			OffsetDays:       inst.OffsetDays,
			DueDate:          inst.DueDate.Format(dto.DateLayout),
			Amount:           inst.Amount,
			CommissionAmount: inst.CommissionAmount,
		}
	}
	return out
}
