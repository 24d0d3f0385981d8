package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
	"github.com/jhoicas/Comissoes-api/pkg/document"
	"github.com/jhoicas/Comissoes-api/pkg/textutil"
)

// ClientUseCase alta y listado de clientes del representante.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente. El documento es opcional; si viene debe ser un CPF o CNPJ válido.
func (uc *ClientUseCase) Create(userID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := textutil.CleanName(in.Name, 0)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Document != "" {
		if _, err := document.Validate(in.Document); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Document:  in.Document,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	out := toClientResponse(client)
	return &out, nil
}

// List lista clientes del usuario.
func (uc *ClientUseCase) List(userID string, limit, offset int) (*dto.ClientListResponse, error) {
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toClientResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toClientResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Document:  c.Document,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}
