package inventory

import (
	"context"

	"github.com/factora/pos-api/internal/domain/repository"
)

// DependencyCount cuenta filas dependientes de un producto por tabla.
type DependencyCount struct {
	Movements  int64 `json:"movimientos"`
	Warranties int64 `json:"garantias"`
	SaleLines  int64 `json:"detalles_venta"`
	Total      int64 `json:"total"`
}

// DependencyInspector cuenta, para un producto dado, cuántas filas lo
// referencian en cada tabla dependiente. Lectura pura: sin efectos.
type DependencyInspector struct{}

// CountDependents ejecuta los tres conteos y suma el total.
func (DependencyInspector) CountDependents(
	ctx context.Context,
	movRepo repository.MovementRepository,
	warrantyRepo repository.WarrantyRepository,
	saleRepo repository.SaleRepository,
	productID int64,
) (DependencyCount, error) {
	var c DependencyCount
	var err error

	if c.Movements, err = movRepo.CountByProduct(ctx, productID); err != nil {
		return DependencyCount{}, err
	}
	if c.Warranties, err = warrantyRepo.CountByProduct(ctx, productID); err != nil {
		return DependencyCount{}, err
	}
	if c.SaleLines, err = saleRepo.CountLinesByProduct(ctx, productID); err != nil {
		return DependencyCount{}, err
	}
	c.Total = c.Movements + c.Warranties + c.SaleLines
	return c, nil
}
