package repository

import (
	"context"

	"github.com/factora/pos-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para usuarios (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// GetByLogin busca por nombre o email, sin distinguir mayúsculas.
	GetByLogin(ctx context.Context, login string) (*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
}
