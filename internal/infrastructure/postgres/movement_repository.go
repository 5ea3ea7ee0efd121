package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/factora/pos-api/internal/domain"
	"github.com/factora/pos-api/internal/domain/entity"
	"github.com/factora/pos-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL
// (usable con pool o tx). Los movimientos son append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = "id_mov, id_producto, tipo, cantidad, fecha"

// Create persiste un movimiento con el ID ya asignado.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	query := `
		INSERT INTO movimientos_inventario (id_mov, id_producto, tipo, cantidad, fecha)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductID, movement.Kind, movement.Quantity, movement.Date,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(ctx context.Context, id int64) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movimientos_inventario WHERE id_mov = $1`
	var m entity.Movement
	err := r.q.QueryRow(ctx, query, id).Scan(&m.ID, &m.ProductID, &m.Kind, &m.Quantity, &m.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// List lista movimientos por fecha descendente.
func (r *MovementRepo) List(ctx context.Context, limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movimientos_inventario ORDER BY fecha DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return r.scanMany(rows)
}

// ListByProduct lista los movimientos de un producto por fecha descendente.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + ` FROM movimientos_inventario
		WHERE id_producto = $1 ORDER BY fecha DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	return r.scanMany(rows)
}

// CountByProduct cuenta los movimientos que referencian al producto.
func (r *MovementRepo) CountByProduct(ctx context.Context, productID int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM movimientos_inventario WHERE id_producto = $1`, productID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}

// DeleteByProduct elimina todos los movimientos del producto y devuelve
// cuántas filas se eliminaron.
func (r *MovementRepo) DeleteByProduct(ctx context.Context, productID int64) (int64, error) {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM movimientos_inventario WHERE id_producto = $1`, productID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete movements by product: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *MovementRepo) scanMany(rows pgx.Rows) ([]*entity.Movement, error) {
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Kind, &m.Quantity, &m.Date); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
