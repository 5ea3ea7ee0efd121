package postgres

import (
	"context"
	"fmt"

	"github.com/factora/pos-api/internal/domain"
	"github.com/factora/pos-api/internal/domain/repository"
)

var _ repository.IDAllocator = (*IDAllocator)(nil)

// idColumns mapea cada tabla a su columna de identificador. Lista cerrada:
// el nombre de tabla jamás viene del request.
var idColumns = map[string]string{
	repository.EntityProduct:  "id_producto",
	repository.EntityMovement: "id_mov",
	repository.EntitySupplier: "id_proveedor",
	repository.EntityClient:   "id_cliente",
	repository.EntitySale:     "id_venta",
	repository.EntitySaleLine: "id_detalle",
	repository.EntityWarranty: "id_garantia",
	repository.EntityUser:     "id_usuario",
}

// IDAllocator calcula max+1 sobre la tabla indicada. El valor solo es seguro
// usado dentro de la misma transacción que el INSERT: la llave primaria
// detecta la colisión con otro asignador concurrente y el motor reintenta.
type IDAllocator struct {
	q Querier
}

// NewIDAllocator construye el asignador. Pasar la tx de la operación (Querier).
func NewIDAllocator(q Querier) *IDAllocator {
	return &IDAllocator{q: q}
}

// Next devuelve el siguiente identificador para la entidad.
func (a *IDAllocator) Next(ctx context.Context, entityKind string) (int64, error) {
	column, ok := idColumns[entityKind]
	if !ok {
		return 0, domain.ErrInvalidInput
	}
	query := fmt.Sprintf("SELECT COALESCE(MAX(%s), 0) + 1 FROM %s", column, entityKind)
	var next int64
	if err := a.q.QueryRow(ctx, query).Scan(&next); err != nil {
		return 0, fmt.Errorf("allocate id %s: %w", entityKind, err)
	}
	return next, nil
}
