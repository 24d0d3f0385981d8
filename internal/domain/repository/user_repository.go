package repository

import "github.com/jhoicas/Comissoes-api/internal/domain/entity"

// UserRepository persistencia de representantes. GetByEmail compara sin distinguir mayúsculas.
// Los Get* devuelven (nil, nil) si no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// Update guarda nombre, hash de password y estado.
	Update(user *entity.User) error
}
