package entity

import "time"

// Estados de garantía (RMA).
const (
	WarrantyStatusAbierta   = "ABIERTA"
	WarrantyStatusCerrada   = "CERRADA"
	WarrantyStatusRechazada = "RECHAZADA"
)

// Warranty representa una garantía (RMA) asociada a un producto vendido.
// Referencia un producto y por tanto participa en la cascada de eliminación.
type Warranty struct {
	ID          int64
	ProductID   int64
	SaleID      *int64
	Description string
	Status      string
	CreatedAt   time.Time
}
