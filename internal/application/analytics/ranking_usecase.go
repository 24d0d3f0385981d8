package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/commission"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
)

const defaultTopN = 5

var hundred = decimal.NewFromInt(100)

// RankingUseCase ranking de comisión por pasta: top N y el resto agrupado en "Outras".
type RankingUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	topN          int
}

// NewRankingUseCase construye el caso de uso. topN <= 0 usa 5.
func NewRankingUseCase(analyticsRepo repository.AnalyticsRepository, topN int) *RankingUseCase {
	if topN <= 0 {
		topN = defaultTopN
	}
	return &RankingUseCase{analyticsRepo: analyticsRepo, topN: topN}
}

// GetCommissionRanking devuelve el ranking del período [from, to] (YYYY-MM-DD; vacíos = mes en curso).
func (uc *RankingUseCase) GetCommissionRanking(ctx context.Context, userID, fromStr, toStr string) (*dto.CommissionRankingDTO, error) {
	from, to, err := parsePeriod(fromStr, toStr, time.Now())
	if err != nil {
		return nil, err
	}
	rows, err := uc.analyticsRepo.GetCommissionBySupplier(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics: comisión por pasta: %w", err)
	}
	out := &dto.CommissionRankingDTO{
		Period:          dto.PeriodDTO{From: from.Format(dto.DateLayout), To: to.Format(dto.DateLayout)},
		TotalGross:      decimal.Zero,
		TotalCommission: decimal.Zero,
	}
	for _, r := range rows {
		out.TotalGross = out.TotalGross.Add(r.TotalGross)
	}
	out.Items, out.TotalCommission = buildRanking(rows, uc.topN)
	out.TotalGross = out.TotalGross.Round(2)
	return out, nil
}

// buildRanking reduce → ordena → corta con commission.RankTop y calcula la participación.
func buildRanking(rows []repository.SupplierCommissionResult, topN int) ([]dto.SupplierRankingEntry, decimal.Decimal) {
	entries := make([]commission.RankEntry, 0, len(rows))
	total := decimal.Zero
	for _, r := range rows {
		entries = append(entries, commission.RankEntry{Key: r.SupplierID, Label: r.SupplierName, Value: r.TotalCommission})
		total = total.Add(r.TotalCommission)
	}
	ranked := commission.RankTop(entries, topN)
	items := make([]dto.SupplierRankingEntry, 0, len(ranked))
	for i, e := range ranked {
		share := decimal.Zero
		if total.IsPositive() {
			share = e.Value.Div(total).Mul(hundred).Round(2)
		}
		items = append(items, dto.SupplierRankingEntry{
			Rank:       i + 1,
			SupplierID: e.Key,
			Name:       e.Label,
			Commission: e.Value.Round(2),
			Share:      share,
		})
	}
	return items, total.Round(2)
}

// parsePeriod convierte los strings de fecha en time.Time; vacíos = mes en curso hasta hoy.
// El fin es inclusivo hasta el final del día.
func parsePeriod(fromStr, toStr string, now time.Time) (from, to time.Time, err error) {
	if toStr == "" {
		to = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else if to, err = time.Parse(dto.DateLayout, toStr); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to inválido", domain.ErrInvalidInput)
	}

	if fromStr == "" {
		from = time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	} else if from, err = time.Parse(dto.DateLayout, fromStr); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from inválido", domain.ErrInvalidInput)
	}

	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from no puede ser posterior a to", domain.ErrInvalidInput)
	}
	return from, to, nil
}
