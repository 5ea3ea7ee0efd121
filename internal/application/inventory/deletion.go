package inventory

import (
	"context"

	"github.com/factora/pos-api/internal/domain"
	"github.com/factora/pos-api/internal/domain/repository"
)

// DeletionPreview resultado de la consulta de impacto (dry-run).
type DeletionPreview struct {
	ProductName string          `json:"producto"`
	Dependents  DependencyCount `json:"registros_relacionados"`
}

// DeletionReport resultado de una eliminación destructiva.
type DeletionReport struct {
	Deleted DependencyCount `json:"eliminados"`
}

// DeletionCoordinator orquesta la vista previa y la eliminación en cascada de
// un producto junto con sus dependientes (movimientos, garantías y líneas de
// venta). Un producto inexistente es ErrNotFound tanto en Preview como en
// Execute; no se adopta el nombre por defecto del sistema anterior.
type DeletionCoordinator struct {
	inspector DependencyInspector
}

// Preview resuelve el nombre del producto y cuenta dependientes sin mutar nada.
func (dc *DeletionCoordinator) Preview(
	ctx context.Context,
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	warrantyRepo repository.WarrantyRepository,
	saleRepo repository.SaleRepository,
	productID int64,
) (DeletionPreview, error) {
	product, err := productRepo.GetByID(ctx, productID)
	if err != nil {
		return DeletionPreview{}, err
	}
	if product == nil {
		return DeletionPreview{}, domain.ErrNotFound
	}
	counts, err := dc.inspector.CountDependents(ctx, movRepo, warrantyRepo, saleRepo, productID)
	if err != nil {
		return DeletionPreview{}, err
	}
	return DeletionPreview{ProductName: product.Name, Dependents: counts}, nil
}

// Execute cuenta los dependientes (para el reporte), elimina las filas de las
// tres tablas dependientes y finalmente el producto. Bloquea la fila del
// producto primero para serializar contra movimientos concurrentes. Debe
// invocarse dentro de una transacción: cualquier fallo revierte la cascada
// completa y ninguna eliminación parcial es observable.
func (dc *DeletionCoordinator) Execute(
	ctx context.Context,
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	warrantyRepo repository.WarrantyRepository,
	saleRepo repository.SaleRepository,
	productID int64,
) (DeletionReport, error) {
	product, err := productRepo.GetByIDForUpdate(ctx, productID)
	if err != nil {
		return DeletionReport{}, err
	}
	if product == nil {
		return DeletionReport{}, domain.ErrNotFound
	}
	counts, err := dc.inspector.CountDependents(ctx, movRepo, warrantyRepo, saleRepo, productID)
	if err != nil {
		return DeletionReport{}, err
	}

	if _, err := movRepo.DeleteByProduct(ctx, productID); err != nil {
		return DeletionReport{}, err
	}
	if _, err := warrantyRepo.DeleteByProduct(ctx, productID); err != nil {
		return DeletionReport{}, err
	}
	if _, err := saleRepo.DeleteLinesByProduct(ctx, productID); err != nil {
		return DeletionReport{}, err
	}
	if err := productRepo.Delete(ctx, productID); err != nil {
		return DeletionReport{}, err
	}
	return DeletionReport{Deleted: counts}, nil
}
