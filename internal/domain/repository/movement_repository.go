package repository

import (
	"context"

	"github.com/factora/pos-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para movimientos de
// inventario (DIP). Los movimientos son append-only: no hay Update.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id int64) (*entity.Movement, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Movement, error)
	ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*entity.Movement, error)
	CountByProduct(ctx context.Context, productID int64) (int64, error)
	DeleteByProduct(ctx context.Context, productID int64) (int64, error)
}
