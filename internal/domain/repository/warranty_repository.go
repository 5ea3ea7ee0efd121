package repository

import (
	"context"

	"github.com/factora/pos-api/internal/domain/entity"
)

// WarrantyRepository define el puerto de persistencia para garantías (DIP).
type WarrantyRepository interface {
	Create(ctx context.Context, warranty *entity.Warranty) error
	List(ctx context.Context, limit, offset int) ([]*entity.Warranty, error)
	ListByProduct(ctx context.Context, productID int64) ([]*entity.Warranty, error)
	CountByProduct(ctx context.Context, productID int64) (int64, error)
	DeleteByProduct(ctx context.Context, productID int64) (int64, error)
}
