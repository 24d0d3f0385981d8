package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo instantánea de ventas: cabecera, líneas y parcelas.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, user_id, supplier_id, client_id, mode, sale_date, payment_notation, total_gross, net_base, total_commission, created_at, updated_at`

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(s *entity.Sale) error {
	query := `INSERT INTO sales (` + saleColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.UserID, s.SupplierID, nullString(s.ClientID), s.Mode, s.SaleDate, s.PaymentNotation,
		s.TotalGross, s.NetBase, s.TotalCommission, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la venta.
func (r *SaleRepo) CreateItem(it *entity.SaleItem) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, gross_value, tax_rate, commission_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		it.ID, it.SaleID, nullString(it.ProductID), it.Quantity, it.GrossValue, it.TaxRate, it.CommissionRate,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// CreateInstallment persiste una parcela de la venta.
func (r *SaleRepo) CreateInstallment(in *entity.SaleInstallment) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO sale_installments (id, sale_id, number, offset_days, due_date, amount, commission_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		in.ID, in.SaleID, in.Number, in.OffsetDays, in.DueDate, in.Amount, in.CommissionAmount,
	)
	if err != nil {
		return fmt.Errorf("insert sale installment: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(context.Background(), `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// GetItemsBySaleID devuelve las líneas de una venta.
func (r *SaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, sale_id, COALESCE(product_id::TEXT, ''), quantity, gross_value, tax_rate, commission_rate
		FROM sale_items WHERE sale_id = $1 ORDER BY id`, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.GrossValue, &it.TaxRate, &it.CommissionRate); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// GetInstallmentsBySaleID devuelve las parcelas en orden.
func (r *SaleRepo) GetInstallmentsBySaleID(saleID string) ([]*entity.SaleInstallment, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, sale_id, number, offset_days, due_date, amount, commission_amount
		FROM sale_installments WHERE sale_id = $1 ORDER BY number`, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale installments: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleInstallment
	for rows.Next() {
		var in entity.SaleInstallment
		if err := rows.Scan(&in.ID, &in.SaleID, &in.Number, &in.OffsetDays, &in.DueDate, &in.Amount, &in.CommissionAmount); err != nil {
			return nil, fmt.Errorf("scan sale installment: %w", err)
		}
		list = append(list, &in)
	}
	return list, rows.Err()
}

// ListByUser lista ventas del representante en [from, to].
func (r *SaleRepo) ListByUser(userID string, from, to time.Time, limit, offset int) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+saleColumns+` FROM sales WHERE user_id = $1 AND sale_date BETWEEN $2 AND $3
		 ORDER BY sale_date DESC LIMIT $4 OFFSET $5`,
		userID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var clientID *string
	if err := row.Scan(&s.ID, &s.UserID, &s.SupplierID, &clientID, &s.Mode, &s.SaleDate, &s.PaymentNotation,
		&s.TotalGross, &s.NetBase, &s.TotalCommission, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if clientID != nil {
		s.ClientID = *clientID
	}
	return &s, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
