package inventory

import (
	"context"

	"github.com/factora/pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios y asignador de IDs atados a esa tx. Garantiza atomicidad para
// el motor de consistencia: todo lo que haga fn se confirma junto o se
// revierte junto (incluida la cancelación del contexto del caller).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
		warrantyRepo repository.WarrantyRepository,
		saleRepo repository.SaleRepository,
		alloc repository.IDAllocator,
	) error) error
}
