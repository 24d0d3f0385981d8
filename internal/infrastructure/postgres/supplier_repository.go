package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository (pastas) sobre PostgreSQL.
type SupplierRepo struct {
	q     Querier
	rules *CommissionRuleRepo
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q, rules: NewCommissionRuleRepository(q)}
}

// Create persiste una nueva pasta (sin reglas).
func (r *SupplierRepo) Create(s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, user_id, name, default_commission_rate, default_tax_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.UserID, s.Name, s.DefaultCommissionRate, s.DefaultTaxRate, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene la pasta con sus reglas cargadas.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `
		SELECT id, user_id, name, default_commission_rate, default_tax_rate, created_at, updated_at
		FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.UserID, &s.Name, &s.DefaultCommissionRate, &s.DefaultTaxRate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	rules, err := r.rules.ListBySupplier(s.ID)
	if err != nil {
		return nil, err
	}
	s.Rules = rules
	return &s, nil
}

// Update actualiza nombre y tasas de respaldo.
func (r *SupplierRepo) Update(s *entity.Supplier) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE suppliers SET name = $2, default_commission_rate = $3, default_tax_rate = $4, updated_at = $5 WHERE id = $1`,
		s.ID, s.Name, s.DefaultCommissionRate, s.DefaultTaxRate, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// ListByUser lista las pastas del representante (sin reglas).
func (r *SupplierRepo) ListByUser(userID string, limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT id, user_id, name, default_commission_rate, default_tax_rate, created_at, updated_at
		FROM suppliers WHERE user_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.DefaultCommissionRate, &s.DefaultTaxRate, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
