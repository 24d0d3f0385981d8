package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
	"github.com/jhoicas/Comissoes-api/pkg/textutil"
)

// SupplierUseCase casos de uso CRUD para pastas (fornecedores representados).
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea una pasta con sus tasas fijas por defecto.
func (uc *SupplierUseCase) Create(userID string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	name := textutil.CleanName(in.Name, 0)
	if name == "" || !validPercentage(in.DefaultCommissionRate) || !validPercentage(in.DefaultTaxRate) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:                    uuid.New().String(),
		UserID:                userID,
		Name:                  name,
		DefaultCommissionRate: in.DefaultCommissionRate,
		DefaultTaxRate:        in.DefaultTaxRate,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene una pasta del usuario con sus reglas.
func (uc *SupplierUseCase) GetByID(userID, id string) (*dto.SupplierResponse, error) {
	supplier, err := ownedSupplier(uc.repo, userID, id)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Update actualiza nombre y tasas por defecto.
func (uc *SupplierUseCase) Update(userID, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := ownedSupplier(uc.repo, userID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := textutil.CleanName(*in.Name, 0)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		supplier.Name = name
	}
	if in.DefaultCommissionRate != nil {
		if !validPercentage(*in.DefaultCommissionRate) {
			return nil, domain.ErrInvalidInput
		}
		supplier.DefaultCommissionRate = *in.DefaultCommissionRate
	}
	if in.DefaultTaxRate != nil {
		if !validPercentage(*in.DefaultTaxRate) {
			return nil, domain.ErrInvalidInput
		}
		supplier.DefaultTaxRate = *in.DefaultTaxRate
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista las pastas del usuario con paginación.
func (uc *SupplierUseCase) List(userID string, limit, offset int) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	out := &dto.SupplierResponse{
		ID:                    s.ID,
		Name:                  s.Name,
		DefaultCommissionRate: s.DefaultCommissionRate,
		DefaultTaxRate:        s.DefaultTaxRate,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
	for i := range s.Rules {
		out.Rules = append(out.Rules, toRuleResponse(&s.Rules[i]))
	}
	return out
}
