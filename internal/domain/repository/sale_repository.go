package repository

import (
	"time"

	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para la instantánea de una venta.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	CreateInstallment(inst *entity.SaleInstallment) error
	GetByID(id string) (*entity.Sale, error)
	GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error)
	GetInstallmentsBySaleID(saleID string) ([]*entity.SaleInstallment, error)
	ListByUser(userID string, from, to time.Time, limit, offset int) ([]*entity.Sale, error)
}
