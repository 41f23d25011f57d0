package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/team-checklist/internal/domain"
	"github.com/bagdasarian/team-checklist/internal/repository"
	"github.com/google/uuid"
)

type userRepository struct {
	executor DBExecutor
}

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{executor: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, password, name, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	var name sql.NullString
	if user.Name != "" {
		name = sql.NullString{String: user.Name, Valid: true}
	}

	return r.executor.QueryRowContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.PasswordHash,
		name,
		time.Now(),
	).Scan(&user.CreatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, email, password, name, created_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.executor.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, password, name, created_at
		FROM users
		WHERE email = $1
	`
	return r.scanUser(r.executor.QueryRowContext(ctx, query, email))
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}
	var name sql.NullString
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &name, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	user.Name = name.String
	return user, nil
}
