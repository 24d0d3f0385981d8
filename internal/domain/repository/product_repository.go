package repository

import "github.com/jhoicas/Comissoes-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySupplierAndSKU(supplierID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListBySupplier(supplierID string, limit, offset int) ([]*entity.Product, error)
	// ClearRule desasigna una regla eliminada de todos los productos que la usaban.
	ClearRule(ruleID string) error
}
