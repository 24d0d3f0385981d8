package repository

import "github.com/jhoicas/Comissoes-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para las pastas.
// GetByID devuelve la pasta con sus reglas cargadas en Rules (instantánea para el motor).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	ListByUser(userID string, limit, offset int) ([]*entity.Supplier, error)
}
