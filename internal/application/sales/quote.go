package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/commission"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
	"github.com/jhoicas/Comissoes-api/internal/domain/schedule"
	"github.com/jhoicas/Comissoes-api/pkg/logger"
)

var hundred = decimal.NewFromInt(100)

// QuoteUseCase simula una venta: resuelve tasas, totales y parcelas sin persistir.
type QuoteUseCase struct {
	supplierRepo    repository.SupplierRepository
	productRepo     repository.ProductRepository
	defaultInterval int
	log             *logger.Logger
	metrics         *saleMetrics
}

// NewQuoteUseCase construye el caso de uso. defaultInterval <= 0 usa 30 días.
func NewQuoteUseCase(
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	defaultInterval int,
	log *logger.Logger,
) *QuoteUseCase {
	if defaultInterval <= 0 {
		defaultInterval = schedule.DefaultIntervalDays
	}
	if log == nil {
		log = logger.Nop()
	}
	return &QuoteUseCase{
		supplierRepo:    supplierRepo,
		productRepo:     productRepo,
		defaultInterval: defaultInterval,
		log:             log,
		metrics:         newSaleMetrics(log),
	}
}

// quote resultado interno del motor, compartido con CreateSaleUseCase.
type quote struct {
	supplier     *entity.Supplier
	mode         string
	saleDate     time.Time
	lines        []entity.SaleLineEntry
	totals       commission.Totals
	term         schedule.PaymentTerm
	installments []schedule.Installment
	warning      string
}

// Quote calcula la venta para el usuario autenticado.
func (uc *QuoteUseCase) Quote(ctx context.Context, userID string, in dto.QuoteSaleRequest) (*dto.QuoteSaleResponse, error) {
	q, err := uc.compute(ctx, userID, in)
	if err != nil {
		return nil, err
	}
	out := q.response()
	return &out, nil
}

func (uc *QuoteUseCase) compute(ctx context.Context, userID string, in dto.QuoteSaleRequest) (_ *quote, err error) {
	ctx, span := startSpan(ctx, "sales.compute",
		attribute.String("supplier_id", in.SupplierID),
		attribute.Int("lines", len(in.Lines)),
	)
	defer func() { endSpan(span, err) }()

	if in.SupplierID == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	mode := in.Mode
	if mode == "" {
		mode = entity.SaleModeSimple
	}
	if mode != entity.SaleModeSimple && mode != entity.SaleModeDetailed {
		return nil, fmt.Errorf("%w: modo %q", domain.ErrInvalidInput, in.Mode)
	}
	detailed := mode == entity.SaleModeDetailed

	saleDate, err := parseDate("sale_date", in.SaleDate)
	if err != nil {
		return nil, err
	}

	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("quote: obtener pasta: %w", err)
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if supplier.UserID != userID {
		return nil, domain.ErrForbidden
	}

	// Productos de solo lectura, uno por ID
	products := make(map[string]*entity.Product)
	lines := make([]entity.SaleLineEntry, 0, len(in.Lines))
	for i, l := range in.Lines {
		var product *entity.Product
		if l.ProductID != "" {
			product = products[l.ProductID]
			if product == nil {
				product, err = uc.productRepo.GetByID(l.ProductID)
				if err != nil {
					return nil, fmt.Errorf("quote: obtener producto: %w", err)
				}
				if product == nil {
					return nil, domain.ErrNotFound
				}
				if product.SupplierID != supplier.ID {
					return nil, domain.ErrForbidden
				}
				products[l.ProductID] = product
			}
		}

		line := entity.SaleLineEntry{ProductID: l.ProductID, Quantity: decimal.NewFromInt(1), GrossValue: l.GrossValue}
		if detailed && l.Quantity != nil {
			if l.Quantity.IsZero() {
				return nil, fmt.Errorf("%w: línea %d con cantidad 0", domain.ErrInvalidInput, i)
			}
			line.Quantity = *l.Quantity
		}
		if l.CommissionRate != nil {
			line = commission.OverrideRate(line, entity.TargetCommission, *l.CommissionRate)
		}
		if l.TaxRate != nil {
			line = commission.OverrideRate(line, entity.TargetTax, *l.TaxRate)
		}
		lines = append(lines, commission.RefreshLine(line, product, supplier))
	}

	if err := commission.ValidateLines(lines, detailed); err != nil {
		return nil, err
	}
	totals := commission.ComputeTotals(lines, detailed)

	term, notation := toPaymentTerm(saleDate, in.Payment, uc.defaultInterval)
	if err := term.Validate(); err != nil {
		return nil, err
	}

	q := &quote{
		supplier:     supplier,
		mode:         mode,
		saleDate:     saleDate,
		lines:        lines,
		totals:       totals,
		term:         term,
		installments: schedule.BuildSchedule(term, totals.TotalGross, effectivePercentage(totals)),
	}
	if notation.Irregular {
		q.warning = notation.Warning()
		uc.log.Warn().
			Str("supplier_id", supplier.ID).
			Ints("offsets", notation.Offsets).
			Ints("intervalos", notation.Intervals).
			Msg("notación de parcelas irregular aceptada")
	}
	span.SetAttributes(attribute.Int("installments", len(q.installments)))
	uc.metrics.quoted(ctx, mode, notation.Irregular)
	return q, nil
}

// effectivePercentage porcentaje de comisión sobre el bruto, para que la comisión de
// las parcelas sume el total. nil si no hay bruto.
func effectivePercentage(t commission.Totals) *decimal.Decimal {
	if !t.TotalGross.IsPositive() {
		return nil
	}
	pct := t.TotalCommission.Mul(hundred).Div(t.TotalGross)
	return &pct
}

func (q *quote) response() dto.QuoteSaleResponse {
	lines := make([]dto.SaleLineResponse, len(q.lines))
	for i, l := range q.lines {
		lines[i] = dto.SaleLineResponse{
			ProductID:            l.ProductID,
			Quantity:             l.Quantity,
			GrossValue:           l.GrossValue,
			TaxRate:              l.TaxRate,
			CommissionRate:       l.CommissionRate,
			TaxRateManual:        l.TaxRateManual,
			CommissionRateManual: l.CommissionRateManual,
		}
	}
	payment := toPaymentTermDTO(q.term)
	return dto.QuoteSaleResponse{
		SupplierID:      q.supplier.ID,
		Mode:            q.mode,
		SaleDate:        q.saleDate.Format(dto.DateLayout),
		Lines:           lines,
		TotalGross:      q.totals.TotalGross,
		NetBase:         q.totals.NetBase,
		TotalCommission: q.totals.TotalCommission,
		Payment:         payment,
		Installments:    toInstallmentResponses(q.installments),
		Notation:        payment.Notation,
		Warning:         q.warning,
	}
}
