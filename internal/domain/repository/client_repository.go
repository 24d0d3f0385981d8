package repository

import "github.com/jhoicas/Comissoes-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Client, error)
}
