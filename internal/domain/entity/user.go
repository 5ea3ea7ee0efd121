package entity

import "time"

// User representa un usuario operador del sistema.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // bcrypt
	Role         string // "admin" | "vendedor"
	CreatedAt    time.Time
}
