package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para reportes de comisión.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetCommissionBySupplier agrupa bruto y comisión de las ventas por pasta.
// El orden y el corte top-N los hace el use case.
func (r *AnalyticsRepo) GetCommissionBySupplier(
	ctx context.Context,
	userID string,
	from, to time.Time,
) ([]repository.SupplierCommissionResult, error) {
	const query = `
	SELECT
	    s.supplier_id,
	    sp.name,
	    COUNT(*)                 AS sale_count,
	    SUM(s.total_gross)       AS total_gross,
	    SUM(s.total_commission)  AS total_commission
	FROM sales s
	JOIN suppliers sp ON sp.id = s.supplier_id
	WHERE s.user_id = $1
	  AND s.sale_date BETWEEN $2 AND $3
	GROUP BY s.supplier_id, sp.name`

	rows, err := r.pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetCommissionBySupplier: %w", err)
	}
	defer rows.Close()

	var results []repository.SupplierCommissionResult
	for rows.Next() {
		var row repository.SupplierCommissionResult
		if err := rows.Scan(&row.SupplierID, &row.SupplierName, &row.SaleCount, &row.TotalGross, &row.TotalCommission); err != nil {
			return nil, fmt.Errorf("analytics.GetCommissionBySupplier scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetReceivablesByMonth suma parcelas y su comisión por mes de vencimiento.
func (r *AnalyticsRepo) GetReceivablesByMonth(
	ctx context.Context,
	userID string,
	from, to time.Time,
) ([]repository.MonthlyReceivableResult, error) {
	const query = `
	SELECT
	    date_trunc('month', i.due_date)::date AS month,
	    COUNT(*)                              AS installment_count,
	    SUM(i.amount)                         AS amount,
	    SUM(i.commission_amount)              AS commission
	FROM sale_installments i
	JOIN sales s ON s.id = i.sale_id
	WHERE s.user_id = $1
	  AND i.due_date BETWEEN $2 AND $3
	GROUP BY 1
	ORDER BY 1`

	rows, err := r.pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetReceivablesByMonth: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlyReceivableResult
	for rows.Next() {
		var row repository.MonthlyReceivableResult
		if err := rows.Scan(&row.Month, &row.Count, &row.Amount, &row.Commission); err != nil {
			return nil, fmt.Errorf("analytics.GetReceivablesByMonth scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
