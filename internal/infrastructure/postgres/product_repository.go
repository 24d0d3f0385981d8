package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, supplier_id, sku, name, price, commission_rule_id, tax_rule_id, default_commission_rate, default_tax_rate, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `INSERT INTO products (` + productColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.SupplierID, p.SKU, p.Name, p.Price, p.CommissionRuleID, p.TaxRuleID,
		nullDecimal(p.DefaultCommissionRate), nullDecimal(p.DefaultTaxRate), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.findOne(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetBySupplierAndSKU obtiene un producto por pasta y SKU.
func (r *ProductRepo) GetBySupplierAndSKU(supplierID, sku string) (*entity.Product, error) {
	return r.findOne(`SELECT `+productColumns+` FROM products WHERE supplier_id = $1 AND sku = $2`, supplierID, sku)
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products SET sku = $2, name = $3, price = $4, commission_rule_id = $5, tax_rule_id = $6,
			default_commission_rate = $7, default_tax_rate = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.SKU, p.Name, p.Price, p.CommissionRuleID, p.TaxRuleID,
		nullDecimal(p.DefaultCommissionRate), nullDecimal(p.DefaultTaxRate), p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// ListBySupplier lista productos de una pasta con paginación.
func (r *ProductRepo) ListBySupplier(supplierID string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE supplier_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, supplierID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ClearRule desasigna la regla de todos los productos que la referencian.
func (r *ProductRepo) ClearRule(ruleID string) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE products SET
			commission_rule_id = CASE WHEN commission_rule_id = $1 THEN NULL ELSE commission_rule_id END,
			tax_rule_id        = CASE WHEN tax_rule_id = $1 THEN NULL ELSE tax_rule_id END,
			updated_at = now()
		WHERE commission_rule_id = $1 OR tax_rule_id = $1`, ruleID)
	if err != nil {
		return fmt.Errorf("clear product rule: %w", err)
	}
	return nil
}

func (r *ProductRepo) findOne(query string, args ...any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p       entity.Product
		defComm decimal.NullDecimal
		defTax  decimal.NullDecimal
	)
	if err := row.Scan(&p.ID, &p.SupplierID, &p.SKU, &p.Name, &p.Price, &p.CommissionRuleID, &p.TaxRuleID,
		&defComm, &defTax, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if defComm.Valid {
		p.DefaultCommissionRate = &defComm.Decimal
	}
	if defTax.Valid {
		p.DefaultTaxRate = &defTax.Decimal
	}
	return &p, nil
}

func nullDecimal(v *decimal.Decimal) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*v)
}
