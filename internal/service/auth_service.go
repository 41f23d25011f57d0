package service

import (
	"context"

	"github.com/bagdasarian/team-checklist/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, email, password, name string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
