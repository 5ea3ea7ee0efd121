package dto

// CreateSupplierRequest cuerpo para crear un proveedor.
type CreateSupplierRequest struct {
	Nombre   string `json:"nombre" validate:"required,max=200"`
	Contacto string `json:"contacto" validate:"max=200"`
	Telefono string `json:"telefono" validate:"max=50"`
	Correo   string `json:"correo" validate:"omitempty,email"`
}

// UpdateSupplierRequest campos opcionales a actualizar.
type UpdateSupplierRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,max=200"`
	Contacto *string `json:"contacto" validate:"omitempty,max=200"`
	Telefono *string `json:"telefono" validate:"omitempty,max=50"`
	Correo   *string `json:"correo" validate:"omitempty,email"`
}

// SupplierResponse representación de un proveedor en respuestas.
type SupplierResponse struct {
	ID       int64  `json:"id_proveedor"`
	Nombre   string `json:"nombre"`
	Contacto string `json:"contacto"`
	Telefono string `json:"telefono"`
	Correo   string `json:"correo"`
}
