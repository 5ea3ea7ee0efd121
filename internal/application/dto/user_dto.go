package dto

// LoginRequest credenciales de acceso; Username acepta nombre o correo.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse representación de un usuario en respuestas (sin hash).
type UserResponse struct {
	ID     int64  `json:"id_usuario"`
	Nombre string `json:"nombre"`
	Correo string `json:"correo"`
	Rol    string `json:"rol"`
}

// LoginResponse token JWT más los datos del usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterUserRequest cuerpo para crear un usuario operador.
type RegisterUserRequest struct {
	Nombre   string `json:"nombre" validate:"required,max=200"`
	Correo   string `json:"correo" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Rol      string `json:"rol" validate:"required,oneof=admin vendedor"`
}
