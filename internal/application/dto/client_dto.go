package dto

// CreateClientRequest cuerpo para crear un cliente.
type CreateClientRequest struct {
	Nombre    string `json:"nombre" validate:"required,max=200"`
	RUT       string `json:"rut" validate:"max=20"`
	Correo    string `json:"correo" validate:"omitempty,email"`
	Telefono  string `json:"telefono" validate:"max=50"`
	Direccion string `json:"direccion" validate:"max=300"`
}

// UpdateClientRequest campos opcionales a actualizar: esquema declarado de
// campos opcionales en lugar del descubrimiento de columnas en runtime del
// sistema anterior.
type UpdateClientRequest struct {
	Nombre    *string `json:"nombre" validate:"omitempty,max=200"`
	RUT       *string `json:"rut" validate:"omitempty,max=20"`
	Correo    *string `json:"correo" validate:"omitempty,email"`
	Telefono  *string `json:"telefono" validate:"omitempty,max=50"`
	Direccion *string `json:"direccion" validate:"omitempty,max=300"`
}

// ClientResponse representación de un cliente en respuestas.
type ClientResponse struct {
	ID        int64  `json:"id_cliente"`
	Nombre    string `json:"nombre"`
	RUT       string `json:"rut"`
	Correo    string `json:"correo"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}
