package usecase

import (
	"context"
	"time"

	"github.com/factora/pos-api/internal/application/dto"
	"github.com/factora/pos-api/internal/domain"
	"github.com/factora/pos-api/internal/domain/entity"
	"github.com/factora/pos-api/internal/domain/repository"
	"github.com/factora/pos-api/pkg/textutil"
)

// WarrantyUseCase casos de uso para garantías (RMA).
type WarrantyUseCase struct {
	repo        repository.WarrantyRepository
	productRepo repository.ProductRepository
	alloc       repository.IDAllocator
	now         func() time.Time
}

// NewWarrantyUseCase construye el caso de uso.
func NewWarrantyUseCase(
	repo repository.WarrantyRepository,
	productRepo repository.ProductRepository,
	alloc repository.IDAllocator,
) *WarrantyUseCase {
	return &WarrantyUseCase{repo: repo, productRepo: productRepo, alloc: alloc, now: time.Now}
}

// Create abre una garantía para un producto existente.
func (uc *WarrantyUseCase) Create(ctx context.Context, in dto.CreateWarrantyRequest) (*dto.WarrantyResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, in.IDProducto)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	warranty := &entity.Warranty{
		ProductID:   in.IDProducto,
		SaleID:      in.IDVenta,
		Description: textutil.Clean(in.Descripcion),
		Status:      entity.WarrantyStatusAbierta,
		CreatedAt:   uc.now(),
	}
	err = withAllocRetry(func() error {
		id, err := uc.alloc.Next(ctx, repository.EntityWarranty)
		if err != nil {
			return err
		}
		warranty.ID = id
		return uc.repo.Create(ctx, warranty)
	})
	if err != nil {
		return nil, err
	}
	return toWarrantyResponse(warranty), nil
}

// List lista garantías con paginación.
func (uc *WarrantyUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.WarrantyResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarrantyResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarrantyResponse(w))
	}
	return items, nil
}

// ListByProduct lista las garantías de un producto.
func (uc *WarrantyUseCase) ListByProduct(ctx context.Context, productID int64) ([]dto.WarrantyResponse, error) {
	list, err := uc.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarrantyResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarrantyResponse(w))
	}
	return items, nil
}

func toWarrantyResponse(w *entity.Warranty) *dto.WarrantyResponse {
	return &dto.WarrantyResponse{
		ID:          w.ID,
		IDProducto:  w.ProductID,
		IDVenta:     w.SaleID,
		Descripcion: w.Description,
		Estado:      w.Status,
		Fecha:       w.CreatedAt,
	}
}
