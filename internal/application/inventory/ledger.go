package inventory

import (
	"context"
	"time"

	"github.com/factora/pos-api/internal/domain"
	"github.com/factora/pos-api/internal/domain/entity"
	"github.com/factora/pos-api/internal/domain/repository"
)

// MovementInput entrada para registrar un movimiento de inventario.
type MovementInput struct {
	ProductID int64
	Kind      string // ENTRADA | SALIDA
	Quantity  int64  // positiva
}

// StockLedger mantiene la relación entre el stock de un producto y su
// historial de movimientos: inserta el movimiento y aplica el delta firmado
// sobre productos.stock en la misma transacción. El invariante es
//
//	stock == stock_inicial + Σ ENTRADA − Σ SALIDA
//
// y ambos writes deben sostenerlo juntos.
type StockLedger struct {
	// RejectNegativeStock rechaza salidas que dejarían el stock bajo cero.
	// Apagado por defecto: el comportamiento histórico permite stock negativo.
	RejectNegativeStock bool
}

// Validate verifica las precondiciones del movimiento sin tocar la BD.
func (in MovementInput) Validate() error {
	if in.ProductID <= 0 {
		return domain.ErrInvalidInput
	}
	if !entity.ValidMovementKind(in.Kind) {
		return domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// RecordMovement inserta el movimiento con un ID recién asignado y la fecha
// del servidor, y ajusta el stock del producto. Debe invocarse dentro de una
// transacción (repos atados a la tx); bloquea la fila del producto
// (SELECT FOR UPDATE) para que dos movimientos concurrentes sobre el mismo
// producto, o un movimiento compitiendo con una eliminación, se serialicen.
func (l *StockLedger) RecordMovement(
	ctx context.Context,
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	alloc repository.IDAllocator,
	in MovementInput,
	now time.Time,
) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	product, err := productRepo.GetByIDForUpdate(ctx, in.ProductID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}

	mov := &entity.Movement{
		ProductID: in.ProductID,
		Kind:      in.Kind,
		Quantity:  in.Quantity,
		Date:      now,
	}
	if l.RejectNegativeStock && product.Stock+mov.Delta() < 0 {
		return 0, domain.ErrInsufficientStock
	}

	mov.ID, err = alloc.Next(ctx, repository.EntityMovement)
	if err != nil {
		return 0, err
	}
	if err := movRepo.Create(ctx, mov); err != nil {
		return 0, err
	}
	if err := productRepo.AdjustStock(ctx, in.ProductID, mov.Delta()); err != nil {
		return 0, err
	}
	return mov.ID, nil
}
