package usecase

import (
	"errors"

	"github.com/factora/pos-api/internal/domain"
)

// maxAllocAttempts reintentos de alloc+insert para entidades periféricas
// (proveedores, clientes, garantías, usuarios), que no pasan por el motor.
const maxAllocAttempts = 3

// withAllocRetry ejecuta fn (asignar ID + insertar) y reintenta cuando la
// llave primaria detecta una colisión concurrente. Agotados los intentos
// escala ErrConflict.
func withAllocRetry(fn func() error) error {
	var err error
	for attempt := 0; attempt < maxAllocAttempts; attempt++ {
		err = fn()
		if !errors.Is(err, domain.ErrDuplicate) {
			return err
		}
	}
	return domain.ErrConflict
}
