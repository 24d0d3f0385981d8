// Package analytics contiene los casos de uso de reportes de comisión: ranking por
// pasta y resumen del mes con la comisión a recibir por mes de vencimiento.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
)

const receivableMonths = 6 // meses hacia adelante en el widget de comisión a recibir

// DashboardUseCase genera el resumen del mes en curso.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	topN          int
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, topN int) *DashboardUseCase {
	if topN <= 0 {
		topN = defaultTopN
	}
	return &DashboardUseCase{analyticsRepo: analyticsRepo, topN: topN, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO del usuario.
//
// Dos llamadas en paralelo:
//  1. GetCommissionBySupplier(mes)        → totales del mes + top pastas
//  2. GetReceivablesByMonth(mes..+6 meses) → comisión a recibir
func (uc *DashboardUseCase) GetSummary(ctx context.Context, userID string) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	horizon := monthStart.AddDate(0, receivableMonths, 0).Add(-time.Nanosecond)

	// ── Goroutines para paralelizar las consultas DB ──────────────────────────
	type suppliersResult struct {
		rows []repository.SupplierCommissionResult
		err  error
	}
	type receivablesResult struct {
		rows []repository.MonthlyReceivableResult
		err  error
	}
	supCh := make(chan suppliersResult, 1)
	recCh := make(chan receivablesResult, 1)

	go func() {
		rows, err := uc.analyticsRepo.GetCommissionBySupplier(ctx, userID, monthStart, today)
		supCh <- suppliersResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetReceivablesByMonth(ctx, userID, monthStart, horizon)
		recCh <- receivablesResult{rows, err}
	}()

	sup := <-supCh
	rec := <-recCh
	if sup.err != nil {
		return nil, fmt.Errorf("dashboard: comisión del mes: %w", sup.err)
	}
	if rec.err != nil {
		return nil, fmt.Errorf("dashboard: parcelas a recibir: %w", rec.err)
	}

	out := &dto.DashboardSummaryDTO{
		MonthlyGross: decimal.Zero,
		DateLabel:    monthLabel(now),
		Receivables:  make([]dto.MonthlyReceivableDTO, 0, len(rec.rows)),
	}
	for _, r := range sup.rows {
		out.MonthlyGross = out.MonthlyGross.Add(r.TotalGross)
		out.MonthlySales += r.SaleCount
	}
	out.MonthlyGross = out.MonthlyGross.Round(2)
	out.TopSuppliers, out.MonthlyCommission = buildRanking(sup.rows, uc.topN)

	for _, r := range rec.rows {
		out.Receivables = append(out.Receivables, dto.MonthlyReceivableDTO{
			Month:        r.Month.Format("2006-01"),
			Label:        monthLabel(r.Month),
			Installments: r.Count,
			Amount:       r.Amount.Round(2),
			Commission:   r.Commission.Round(2),
		})
	}
	return out, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Fevereiro 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
