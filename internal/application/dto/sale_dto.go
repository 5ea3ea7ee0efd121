package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest línea de una venta nueva. El precio lo resuelve el servidor
// desde el producto; el cliente solo envía producto y cantidad.
type SaleLineRequest struct {
	IDProducto int64 `json:"id_producto" validate:"required,gt=0"`
	Cantidad   int64 `json:"cantidad" validate:"required,gt=0"`
}

// CreateSaleRequest cuerpo para registrar una venta con sus líneas.
type CreateSaleRequest struct {
	Lineas []SaleLineRequest `json:"lineas" validate:"required,min=1,dive"`
}

// SaleLineResponse línea de detalle en respuestas.
type SaleLineResponse struct {
	ID         int64           `json:"id_detalle"`
	IDProducto int64           `json:"id_producto"`
	Cantidad   int64           `json:"cantidad"`
	Precio     decimal.Decimal `json:"precio_unitario"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// SaleResponse representación de una venta en respuestas.
type SaleResponse struct {
	ID        int64              `json:"id_venta"`
	Fecha     time.Time          `json:"fecha"`
	IDUsuario int64              `json:"id_usuario"`
	Total     decimal.Decimal    `json:"total"`
	Lineas    []SaleLineResponse `json:"lineas,omitempty"`
}

// SaleListResponse listado paginado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
