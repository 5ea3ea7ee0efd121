package dto

import "time"

// CreateMovementRequest cuerpo para registrar un movimiento de inventario.
type CreateMovementRequest struct {
	IDProducto int64  `json:"id_producto" validate:"required,gt=0"`
	Tipo       string `json:"tipo" validate:"required,oneof=ENTRADA SALIDA"`
	Cantidad   int64  `json:"cantidad" validate:"required,gt=0"`
}

// MovementResponse representación de un movimiento en respuestas.
type MovementResponse struct {
	ID         int64     `json:"id_mov"`
	IDProducto int64     `json:"id_producto"`
	Tipo       string    `json:"tipo"`
	Cantidad   int64     `json:"cantidad"`
	Fecha      time.Time `json:"fecha"`
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
