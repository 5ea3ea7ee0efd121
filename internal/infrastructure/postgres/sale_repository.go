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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL
// (usable con pool o tx). Maneja ventas y sus líneas de detalle.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta con el ID ya asignado.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO ventas (id_venta, fecha, id_usuario, total)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, sale.ID, sale.Date, sale.UserID, sale.Total)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de detalle con el ID ya asignado.
func (r *SaleRepo) CreateLine(ctx context.Context, line *entity.SaleLine) error {
	query := `
		INSERT INTO detalle_venta (id_detalle, id_venta, id_producto, cantidad, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		line.ID, line.SaleID, line.ProductID, line.Quantity, line.UnitPrice, line.Subtotal,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale line: %w", err)
	}
	return nil
}

// GetByID obtiene una venta con sus líneas.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(ctx,
		`SELECT id_venta, fecha, id_usuario, total FROM ventas WHERE id_venta = $1`, id,
	).Scan(&s.ID, &s.Date, &s.UserID, &s.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT id_detalle, id_venta, id_producto, cantidad, precio_unitario, subtotal
		FROM detalle_venta WHERE id_venta = $1 ORDER BY id_detalle`, id)
	if err != nil {
		return nil, fmt.Errorf("get sale lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		s.Lines = append(s.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &s, nil
}

// List lista ventas por fecha descendente (sin líneas).
func (r *SaleRepo) List(ctx context.Context, limit, offset int) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id_venta, fecha, id_usuario, total FROM ventas ORDER BY fecha DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Date, &s.UserID, &s.Total); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// CountLinesByProduct cuenta las líneas de venta que referencian al producto.
func (r *SaleRepo) CountLinesByProduct(ctx context.Context, productID int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM detalle_venta WHERE id_producto = $1`, productID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count sale lines: %w", err)
	}
	return n, nil
}

// DeleteLinesByProduct elimina las líneas de venta del producto.
func (r *SaleRepo) DeleteLinesByProduct(ctx context.Context, productID int64) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM detalle_venta WHERE id_producto = $1`, productID)
	if err != nil {
		return 0, fmt.Errorf("delete sale lines by product: %w", err)
	}
	return cmd.RowsAffected(), nil
}
