package usecase

import (
	"time"

	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
	"github.com/jhoicas/Comissoes-api/pkg/textutil"
)

// UserUseCase perfil del representante autenticado.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID devuelve el perfil; ErrUserNotFound si el token apunta a un usuario borrado.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.find(id)
	if err != nil {
		return nil, err
	}
	return userResponse(user), nil
}

// UpdateProfile cambia el nombre visible.
func (uc *UserUseCase) UpdateProfile(id string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	name := textutil.CleanName(in.Name, 0)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.find(id)
	if err != nil {
		return nil, err
	}
	user.Name = name
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return userResponse(user), nil
}

func (uc *UserUseCase) find(id string) (*entity.User, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func userResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
