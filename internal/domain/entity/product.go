package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario.
// Stock se modifica exclusivamente vía movimientos (ver Movement); el valor
// almacenado debe coincidir con la suma firmada del historial de movimientos
// a partir del stock inicial declarado al crear el producto.
type Product struct {
	ID          int64
	Name        string
	Description string
	Stock       int64
	Price       decimal.Decimal // precio de venta
	SupplierID  *int64          // referencia débil: el proveedor puede eliminarse aparte
}
