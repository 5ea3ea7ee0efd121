package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementKindEntrada = "ENTRADA" // suma stock
	MovementKindSalida  = "SALIDA"  // resta stock
)

// Movement representa un movimiento de inventario: registro de auditoría
// inmutable (tipo + cantidad + fecha) atado a un producto. Nunca se actualiza;
// solo se elimina como efecto colateral de eliminar su producto.
type Movement struct {
	ID        int64
	ProductID int64
	Kind      string // ENTRADA | SALIDA
	Quantity  int64  // siempre positiva; el signo lo da Kind
	Date      time.Time
}

// ValidMovementKind indica si el tipo es uno de los dos definidos.
func ValidMovementKind(kind string) bool {
	return kind == MovementKindEntrada || kind == MovementKindSalida
}

// Delta devuelve el efecto firmado del movimiento sobre el stock.
func (m *Movement) Delta() int64 {
	if m.Kind == MovementKindSalida {
		return -m.Quantity
	}
	return m.Quantity
}
