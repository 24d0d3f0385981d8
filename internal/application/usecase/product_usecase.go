package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
	"github.com/jhoicas/Comissoes-api/pkg/textutil"
)

// ProductUseCase casos de uso CRUD para productos de una pasta.
type ProductUseCase struct {
	repo         repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, supplierRepo repository.SupplierRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, supplierRepo: supplierRepo}
}

// Create crea un producto. Las reglas asignadas deben ser de la misma pasta y del target correcto.
func (uc *ProductUseCase) Create(userID, supplierID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	supplier, err := ownedSupplier(uc.supplierRepo, userID, supplierID)
	if err != nil {
		return nil, err
	}
	name := textutil.CleanName(in.Name, 0)
	if in.SKU == "" || name == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetBySupplierAndSKU(supplierID, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:                    uuid.New().String(),
		SupplierID:            supplierID,
		SKU:                   in.SKU,
		Name:                  name,
		Price:                 in.Price,
		CommissionRuleID:      emptyToNil(in.CommissionRuleID),
		TaxRuleID:             emptyToNil(in.TaxRuleID),
		DefaultCommissionRate: in.DefaultCommissionRate,
		DefaultTaxRate:        in.DefaultTaxRate,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := validateProductRates(supplier, product); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto de una pasta del usuario.
func (uc *ProductUseCase) GetByID(userID, id string) (*dto.ProductResponse, error) {
	product, _, err := uc.owned(userID, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. Reglas y tasas se reemplazan tal como vienen (nil = quitar).
func (uc *ProductUseCase) Update(userID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, supplier, err := uc.owned(userID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := textutil.CleanName(*in.Name, 0)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	product.CommissionRuleID = emptyToNil(in.CommissionRuleID)
	product.TaxRuleID = emptyToNil(in.TaxRuleID)
	product.DefaultCommissionRate = in.DefaultCommissionRate
	product.DefaultTaxRate = in.DefaultTaxRate
	if err := validateProductRates(supplier, product); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos de la pasta con paginación.
func (uc *ProductUseCase) List(userID, supplierID string, limit, offset int) (*dto.ProductListResponse, error) {
	if _, err := ownedSupplier(uc.supplierRepo, userID, supplierID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListBySupplier(supplierID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *ProductUseCase) owned(userID, id string) (*entity.Product, *entity.Supplier, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, domain.ErrNotFound
	}
	supplier, err := ownedSupplier(uc.supplierRepo, userID, product.SupplierID)
	if err != nil {
		return nil, nil, err
	}
	return product, supplier, nil
}

// validateProductRates verifica reglas asignadas (misma pasta, target correcto) y tasas fijas.
func validateProductRates(supplier *entity.Supplier, p *entity.Product) error {
	for _, target := range []entity.RuleTarget{entity.TargetCommission, entity.TargetTax} {
		if id := p.RuleID(target); id != "" {
			rule := supplier.RuleByID(id)
			if rule == nil || rule.Target != target {
				return fmt.Errorf("%w: regla %s no pertenece a la pasta o no es de %s", domain.ErrInvalidInput, id, target)
			}
		}
		if rate := p.DefaultRate(target); rate != nil && !validPercentage(*rate) {
			return fmt.Errorf("%w: tasa de %s fuera de 0..100", domain.ErrInvalidInput, target)
		}
	}
	return nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                    p.ID,
		SupplierID:            p.SupplierID,
		SKU:                   p.SKU,
		Name:                  p.Name,
		Price:                 p.Price,
		CommissionRuleID:      p.CommissionRuleID,
		TaxRuleID:             p.TaxRuleID,
		DefaultCommissionRate: copyDecimal(p.DefaultCommissionRate),
		DefaultTaxRate:        copyDecimal(p.DefaultTaxRate),
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}
