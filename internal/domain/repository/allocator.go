package repository

import "context"

// Tipos de entidad para el asignador de identificadores.
const (
	EntityProduct  = "productos"
	EntityMovement = "movimientos_inventario"
	EntitySupplier = "proveedores"
	EntityClient   = "clientes"
	EntitySale     = "ventas"
	EntitySaleLine = "detalle_venta"
	EntityWarranty = "garantias"
	EntityUser     = "usuarios"
)

// IDAllocator produce el siguiente identificador entero para una entidad.
// Next debe invocarse dentro de la misma transacción que el INSERT que usa
// el valor: el cálculo max+1 no es atómico por sí solo, y es la restricción
// de unicidad de la tabla la que detecta colisiones concurrentes
// (domain.ErrDuplicate), tras lo cual el motor reintenta la transacción
// completa con un valor recalculado.
type IDAllocator interface {
	Next(ctx context.Context, entityKind string) (int64, error)
}
