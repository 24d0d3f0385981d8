package sales

import (
	"context"

	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
)

// SaleTxRunner ejecuta una función dentro de una transacción con el repo de ventas.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(saleRepo repository.SaleRepository) error) error
}

// StatementData datos necesarios para el extracto de parcelas de una venta.
type StatementData struct {
	Sale         *entity.Sale
	Supplier     *entity.Supplier
	Client       *entity.Client // puede ser nil
	Items        []*entity.SaleItem
	Installments []*entity.SaleInstallment
	Products     map[string]*entity.Product // por ID, para nombre/SKU en las líneas
}

// StatementPDFGenerator genera el PDF del extracto de parcelas de una venta.
type StatementPDFGenerator interface {
	Generate(ctx context.Context, data StatementData) ([]byte, error)
}
