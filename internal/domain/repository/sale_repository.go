package repository

import (
	"context"

	"github.com/factora/pos-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas y sus líneas
// de detalle (DIP). Las líneas referencian productos y participan en la
// cascada de eliminación.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	CreateLine(ctx context.Context, line *entity.SaleLine) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Sale, error)
	CountLinesByProduct(ctx context.Context, productID int64) (int64, error)
	DeleteLinesByProduct(ctx context.Context, productID int64) (int64, error)
}
