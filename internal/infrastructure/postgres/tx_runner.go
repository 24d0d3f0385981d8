package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Comissoes-api/internal/application/sales"
	"github.com/jhoicas/Comissoes-api/internal/application/usecase"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
)

// Ensure TxRunner implements sales.SaleTxRunner and usecase.RuleTxRunner.
var _ sales.SaleTxRunner = (*TxRunner)(nil)
var _ usecase.RuleTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSale persiste cabecera, líneas y parcelas de una venta de forma atómica.
func (r *TxRunner) RunSale(ctx context.Context, fn func(saleRepo repository.SaleRepository) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewSaleRepository(tx))
	})
}

// RunRules agrupa cambios de reglas y de productos que las referencian.
func (r *TxRunner) RunRules(ctx context.Context, fn func(
	ruleRepo repository.CommissionRuleRepository,
	productRepo repository.ProductRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewCommissionRuleRepository(tx), NewProductRepository(tx))
	})
}
