package dto

import "github.com/shopspring/decimal"

// CreateProductRequest cuerpo para crear un producto. Los nombres JSON siguen
// el contrato histórico de la API (claves en español).
type CreateProductRequest struct {
	Nombre      string          `json:"nombre" validate:"required,max=200"`
	Descripcion string          `json:"descripcion" validate:"max=1000"`
	Stock       int64           `json:"stock" validate:"omitempty,min=0"`
	Precio      decimal.Decimal `json:"precio"`
	IDProveedor *int64          `json:"id_proveedor" validate:"omitempty,gt=0"`
}

// UpdateProductRequest campos opcionales a actualizar. Stock no es
// actualizable aquí: se modifica solo vía movimientos.
type UpdateProductRequest struct {
	Nombre      *string          `json:"nombre" validate:"omitempty,max=200"`
	Descripcion *string          `json:"descripcion" validate:"omitempty,max=1000"`
	Precio      *decimal.Decimal `json:"precio"`
	IDProveedor *int64           `json:"id_proveedor" validate:"omitempty,gt=0"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID          int64           `json:"id_producto"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Stock       int64           `json:"stock"`
	Precio      decimal.Decimal `json:"precio"`
	IDProveedor *int64          `json:"id_proveedor,omitempty"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
