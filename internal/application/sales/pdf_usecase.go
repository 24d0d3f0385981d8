package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
)

// PDFUseCase genera el extracto de parcelas (PDF) de una venta registrada.
type PDFUseCase struct {
	saleRepo     repository.SaleRepository
	supplierRepo repository.SupplierRepository
	clientRepo   repository.ClientRepository
	productRepo  repository.ProductRepository
	generator    StatementPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	saleRepo repository.SaleRepository,
	supplierRepo repository.SupplierRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	generator StatementPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		saleRepo:     saleRepo,
		supplierRepo: supplierRepo,
		clientRepo:   clientRepo,
		productRepo:  productRepo,
		generator:    generator,
	}
}

// DownloadStatementPDF carga la venta con sus dependencias y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la venta no existe.
//   - domain.ErrForbidden        si la venta es de otro usuario.
func (uc *PDFUseCase) DownloadStatementPDF(ctx context.Context, userID, saleID string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}
	if sale.UserID != userID {
		return nil, "", domain.ErrForbidden
	}

	supplier, err := uc.supplierRepo.GetByID(sale.SupplierID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener pasta: %w", err)
	}
	if supplier == nil {
		return nil, "", domain.ErrNotFound
	}

	var client *entity.Client
	if sale.ClientID != "" {
		if client, err = uc.clientRepo.GetByID(sale.ClientID); err != nil {
			return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
		}
	}

	items, err := uc.saleRepo.GetItemsBySaleID(sale.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}
	insts, err := uc.saleRepo.GetInstallmentsBySaleID(sale.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener parcelas: %w", err)
	}

	// Productos para nombre y SKU; un producto borrado no impide el PDF
	products := make(map[string]*entity.Product)
	for _, it := range items {
		if it.ProductID == "" || products[it.ProductID] != nil {
			continue
		}
		if p, _ := uc.productRepo.GetByID(it.ProductID); p != nil {
			products[it.ProductID] = p
		}
	}

	pdfBytes, err = uc.generator.Generate(ctx, StatementData{
		Sale:         sale,
		Supplier:     supplier,
		Client:       client,
		Items:        items,
		Installments: insts,
		Products:     products,
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar documento: %w", err)
	}
	return pdfBytes, fmt.Sprintf("venda-%s-%s.pdf", sale.SaleDate.Format("20060102"), shortID(sale.ID)), nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
