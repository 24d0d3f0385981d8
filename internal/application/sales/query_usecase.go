package sales

import (
	"fmt"
	"time"

	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
)

// QueryUseCase lectura de ventas persistidas.
type QueryUseCase struct {
	saleRepo repository.SaleRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(saleRepo repository.SaleRepository) *QueryUseCase {
	return &QueryUseCase{saleRepo: saleRepo}
}

// GetByID devuelve la venta con sus líneas y parcelas tal como se guardaron.
func (uc *QueryUseCase) GetByID(userID, id string) (*dto.SaleResponse, error) {
	sale, err := uc.load(userID, id)
	if err != nil {
		return nil, err
	}
	items, err := uc.saleRepo.GetItemsBySaleID(sale.ID)
	if err != nil {
		return nil, fmt.Errorf("sale: obtener líneas: %w", err)
	}
	insts, err := uc.saleRepo.GetInstallmentsBySaleID(sale.ID)
	if err != nil {
		return nil, fmt.Errorf("sale: obtener parcelas: %w", err)
	}
	return toSaleResponse(sale, items, insts), nil
}

// List devuelve las cabeceras de ventas del usuario en [from, to]. Fechas cero = sin límite.
func (uc *QueryUseCase) List(userID string, from, to time.Time, page dto.PageRequest) (*dto.SaleListResponse, error) {
	page = page.Normalize()
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, fmt.Errorf("%w: to anterior a from", domain.ErrInvalidInput)
	}
	list, err := uc.saleRepo.ListByUser(userID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleSummaryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.SaleSummaryResponse{
			ID:              s.ID,
			SupplierID:      s.SupplierID,
			ClientID:        s.ClientID,
			SaleDate:        s.SaleDate.Format(dto.DateLayout),
			Notation:        s.PaymentNotation,
			TotalGross:      s.TotalGross,
			TotalCommission: s.TotalCommission,
		})
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  page.Response(),
	}, nil
}

func (uc *QueryUseCase) load(userID, id string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("sale: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return sale, nil
}

// toSaleResponse reconstruye la respuesta desde la instantánea. El término de pago se
// devuelve como offsets explícitos: es lo que quedó persistido.
func toSaleResponse(sale *entity.Sale, items []*entity.SaleItem, insts []*entity.SaleInstallment) *dto.SaleResponse {
	lines := make([]dto.SaleLineResponse, len(items))
	for i, it := range items {
		lines[i] = dto.SaleLineResponse{
			ProductID:      it.ProductID,
			Quantity:       it.Quantity,
			GrossValue:     it.GrossValue,
			TaxRate:        it.TaxRate,
			CommissionRate: it.CommissionRate,
		}
	}
	installments := make([]dto.InstallmentResponse, len(insts))
	offsets := make([]int, len(insts))
	for i, in := range insts {
		installments[i] = dto.InstallmentResponse{
			Number:           in.Number,
			OffsetDays:       in.OffsetDays,
			DueDate:          in.DueDate.Format(dto.DateLayout),
			Amount:           in.Amount,
			CommissionAmount: in.CommissionAmount,
		}
		offsets[i] = in.OffsetDays
	}
	payment := dto.PaymentTermDTO{Mode: "installments", Count: len(offsets), DayOffsets: offsets, Notation: sale.PaymentNotation}
	if len(offsets) == 1 {
		payment = dto.PaymentTermDTO{Mode: "cash", OffsetDays: offsets[0], Notation: sale.PaymentNotation}
	}
	return &dto.SaleResponse{
		ID:        sale.ID,
		ClientID:  sale.ClientID,
		CreatedAt: sale.CreatedAt,
		QuoteSaleResponse: dto.QuoteSaleResponse{
			SupplierID:      sale.SupplierID,
			Mode:            sale.Mode,
			SaleDate:        sale.SaleDate.Format(dto.DateLayout),
			Lines:           lines,
			TotalGross:      sale.TotalGross,
			NetBase:         sale.NetBase,
			TotalCommission: sale.TotalCommission,
			Payment:         payment,
			Installments:    installments,
			Notation:        sale.PaymentNotation,
		},
	}
}
