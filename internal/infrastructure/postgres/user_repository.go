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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, email, password_hash, name, role, status, created_at, updated_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role, user.Status,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Update guarda nombre, hash de password y estado.
func (r *UserRepo) Update(user *entity.User) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE users SET name = $2, password_hash = $3, status = $4, updated_at = $5 WHERE id = $1`,
		user.ID, user.Name, user.PasswordHash, user.Status, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.findOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.findOne(`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
}

func (r *UserRepo) findOne(query string, arg string) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
