package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
)

// CreateSaleUseCase calcula una venta con el motor y persiste su instantánea
// (cabecera, líneas y parcelas) en una sola transacción.
type CreateSaleUseCase struct {
	quoteUC    *QuoteUseCase
	txRunner   SaleTxRunner
	clientRepo repository.ClientRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(quoteUC *QuoteUseCase, txRunner SaleTxRunner, clientRepo repository.ClientRepository) *CreateSaleUseCase {
	return &CreateSaleUseCase{quoteUC: quoteUC, txRunner: txRunner, clientRepo: clientRepo}
}

// CreateSale registra la venta del usuario autenticado.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, userID string, in dto.QuoteSaleRequest) (_ *dto.SaleResponse, err error) {
	ctx, span := startSpan(ctx, "sales.create", attribute.String("supplier_id", in.SupplierID))
	defer func() { endSpan(span, err) }()

	if in.ClientID != "" {
		client, err := uc.clientRepo.GetByID(in.ClientID)
		if err != nil {
			return nil, fmt.Errorf("sale: obtener cliente: %w", err)
		}
		if client == nil {
			return nil, domain.ErrNotFound
		}
		if client.UserID != userID {
			return nil, domain.ErrForbidden
		}
	}

	q, err := uc.quoteUC.compute(ctx, userID, in)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:              uuid.New().String(),
		UserID:          userID,
		SupplierID:      q.supplier.ID,
		ClientID:        in.ClientID,
		Mode:            q.mode,
		SaleDate:        q.saleDate,
		PaymentNotation: toPaymentTermDTO(q.term).Notation,
		TotalGross:      q.totals.TotalGross,
		NetBase:         q.totals.NetBase,
		TotalCommission: q.totals.TotalCommission,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = uc.txRunner.RunSale(ctx, func(saleRepo repository.SaleRepository) error {
		if err := saleRepo.Create(sale); err != nil {
			return fmt.Errorf("sale: crear cabecera: %w", err)
		}
		for _, l := range q.lines {
			item := &entity.SaleItem{
				ID:             uuid.New().String(),
				SaleID:         sale.ID,
				ProductID:      l.ProductID,
				Quantity:       l.Quantity,
				GrossValue:     l.GrossValue,
				TaxRate:        l.TaxRate,
				CommissionRate: l.CommissionRate,
			}
			if err := saleRepo.CreateItem(item); err != nil {
				return fmt.Errorf("sale: crear línea: %w", err)
			}
		}
		for _, inst := range q.installments {
			row := &entity.SaleInstallment{
				ID:               uuid.New().String(),
				SaleID:           sale.ID,
				Number:           inst.Index + 1,
				OffsetDays:       inst.OffsetDays,
				DueDate:          inst.DueDate,
				Amount:           inst.Amount,
				CommissionAmount: inst.CommissionAmount,
			}
			if err := saleRepo.CreateInstallment(row); err != nil {
				return fmt.Errorf("sale: crear parcela: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("sale_id", sale.ID))
	uc.quoteUC.metrics.saleCreated(ctx, sale.SupplierID, sale.TotalCommission.InexactFloat64())

	return &dto.SaleResponse{
		ID:                sale.ID,
		ClientID:          sale.ClientID,
		CreatedAt:         sale.CreatedAt,
		QuoteSaleResponse: q.response(),
	}, nil
}
