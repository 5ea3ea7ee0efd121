package usecase

import (
	"context"

	"github.com/factora/pos-api/internal/application/dto"
	"github.com/factora/pos-api/internal/application/inventory"
	"github.com/factora/pos-api/internal/domain/entity"
	"github.com/factora/pos-api/internal/domain/repository"
)

// MovementUseCase registra y consulta movimientos de inventario. El registro
// delega en el motor de consistencia; los listados son lectura directa.
type MovementUseCase struct {
	engine *inventory.Engine
	repo   repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(engine *inventory.Engine, repo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{engine: engine, repo: repo}
}

// Create registra un movimiento ENTRADA/SALIDA y devuelve su ID.
func (uc *MovementUseCase) Create(ctx context.Context, in dto.CreateMovementRequest) (int64, error) {
	return uc.engine.CreateMovement(ctx, inventory.MovementInput{
		ProductID: in.IDProducto,
		Kind:      in.Tipo,
		Quantity:  in.Cantidad,
	})
}

// List lista movimientos por fecha descendente.
func (uc *MovementUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toMovementList(list, page), nil
}

// ListByProduct lista los movimientos de un producto.
func (uc *MovementUseCase) ListByProduct(ctx context.Context, productID int64, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByProduct(ctx, productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toMovementList(list, page), nil
}

func toMovementList(list []*entity.Movement, page dto.PageRequest) *dto.MovementListResponse {
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:         m.ID,
			IDProducto: m.ProductID,
			Tipo:       m.Kind,
			Cantidad:   m.Quantity,
			Fecha:      m.Date,
		})
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}
