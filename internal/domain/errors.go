package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El handler HTTP los traduce a códigos de estado; el motor de inventario
// garantiza rollback de la transacción activa antes de retornarlos.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidCredentials = errors.New("credenciales incorrectas")
)
