package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, user_id, name, document, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.UserID, client.Name, client.Document, client.Email, client.Phone,
		client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `
		SELECT id, user_id, name, document, email, phone, created_at, updated_at
		FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.UserID, &c.Name, &c.Document, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// ListByUser lista clientes del representante con paginación.
func (r *ClientRepo) ListByUser(userID string, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT id, user_id, name, document, email, phone, created_at, updated_at
		FROM clients WHERE user_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Document, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
