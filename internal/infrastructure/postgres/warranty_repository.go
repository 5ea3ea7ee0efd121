package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/factora/pos-api/internal/domain"
	"github.com/factora/pos-api/internal/domain/entity"
	"github.com/factora/pos-api/internal/domain/repository"
)

var _ repository.WarrantyRepository = (*WarrantyRepo)(nil)

// WarrantyRepo implementación del puerto WarrantyRepository sobre PostgreSQL
// (usable con pool o tx).
type WarrantyRepo struct {
	q Querier
}

// NewWarrantyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarrantyRepository(q Querier) *WarrantyRepo {
	return &WarrantyRepo{q: q}
}

const warrantyColumns = "id_garantia, id_producto, id_venta, descripcion, estado, fecha_creacion"

// Create persiste una garantía con el ID ya asignado.
func (r *WarrantyRepo) Create(ctx context.Context, warranty *entity.Warranty) error {
	query := `
		INSERT INTO garantias (id_garantia, id_producto, id_venta, descripcion, estado, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		warranty.ID, warranty.ProductID, warranty.SaleID,
		warranty.Description, warranty.Status, warranty.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warranty: %w", err)
	}
	return nil
}

// List lista garantías por fecha de creación descendente.
func (r *WarrantyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Warranty, error) {
	query := `SELECT ` + warrantyColumns + ` FROM garantias ORDER BY fecha_creacion DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warranties: %w", err)
	}
	return r.scanMany(rows)
}

// ListByProduct lista las garantías de un producto.
func (r *WarrantyRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.Warranty, error) {
	query := `SELECT ` + warrantyColumns + ` FROM garantias WHERE id_producto = $1 ORDER BY fecha_creacion DESC`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list warranties by product: %w", err)
	}
	return r.scanMany(rows)
}

// CountByProduct cuenta las garantías que referencian al producto.
func (r *WarrantyRepo) CountByProduct(ctx context.Context, productID int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM garantias WHERE id_producto = $1`, productID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count warranties: %w", err)
	}
	return n, nil
}

// DeleteByProduct elimina todas las garantías del producto.
func (r *WarrantyRepo) DeleteByProduct(ctx context.Context, productID int64) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM garantias WHERE id_producto = $1`, productID)
	if err != nil {
		return 0, fmt.Errorf("delete warranties by product: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *WarrantyRepo) scanMany(rows pgx.Rows) ([]*entity.Warranty, error) {
	defer rows.Close()
	var list []*entity.Warranty
	for rows.Next() {
		var w entity.Warranty
		if err := rows.Scan(&w.ID, &w.ProductID, &w.SaleID, &w.Description, &w.Status, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan warranty: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
