package dto

import "time"

// CreateWarrantyRequest cuerpo para abrir una garantía (RMA).
type CreateWarrantyRequest struct {
	IDProducto  int64  `json:"id_producto" validate:"required,gt=0"`
	IDVenta     *int64 `json:"id_venta" validate:"omitempty,gt=0"`
	Descripcion string `json:"descripcion" validate:"required,max=1000"`
}

// WarrantyResponse representación de una garantía en respuestas.
type WarrantyResponse struct {
	ID          int64     `json:"id_garantia"`
	IDProducto  int64     `json:"id_producto"`
	IDVenta     *int64    `json:"id_venta,omitempty"`
	Descripcion string    `json:"descripcion"`
	Estado      string    `json:"estado"`
	Fecha       time.Time `json:"fecha_creacion"`
}
