package repository

import (
	"context"

	"github.com/factora/pos-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Stock no se modifica por Update; solo por AdjustStock dentro del motor
// de inventario.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para
	// serializar operaciones concurrentes sobre el mismo producto.
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Search(ctx context.Context, term string, limit int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// AdjustStock aplica un delta firmado al stock del producto.
	AdjustStock(ctx context.Context, id, delta int64) error
	Delete(ctx context.Context, id int64) error
}
