package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta del punto de venta.
type Sale struct {
	ID     int64
	Date   time.Time
	UserID int64
	Total  decimal.Decimal
	Lines  []SaleLine
}

// SaleLine es una línea de detalle de venta; referencia un producto y por
// tanto participa en la cascada de eliminación de productos.
type SaleLine struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Quantity  int64
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
