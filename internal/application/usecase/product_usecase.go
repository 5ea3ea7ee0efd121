package usecase

import (
	"context"

	"github.com/factora/pos-api/internal/application/dto"
	"github.com/factora/pos-api/internal/application/inventory"
	"github.com/factora/pos-api/internal/domain"
	"github.com/factora/pos-api/internal/domain/entity"
	"github.com/factora/pos-api/internal/domain/repository"
	"github.com/factora/pos-api/pkg/textutil"
)

// ProductUseCase casos de uso para productos. La creación y la eliminación
// pasan por el motor de consistencia (asignación de ID transaccional y
// cascada atómica); lecturas y updates simples van directo al repositorio.
type ProductUseCase struct {
	engine *inventory.Engine
	repo   repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(engine *inventory.Engine, repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{engine: engine, repo: repo}
}

// Create crea un producto con stock inicial declarado.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	id, err := uc.engine.CreateProduct(ctx, inventory.ProductInput{
		Name:        textutil.Clean(in.Nombre),
		Description: textutil.Clean(in.Descripcion),
		Stock:       in.Stock,
		Price:       in.Precio,
		SupplierID:  in.IDProveedor,
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Search busca productos por nombre o descripción; el término se pliega
// (sin tildes) para que la búsqueda no distinga acentos.
func (uc *ProductUseCase) Search(ctx context.Context, term string, limit int) ([]dto.ProductResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	list, err := uc.repo.Search(ctx, textutil.Fold(textutil.Clean(term)), limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update actualiza los campos presentes. Stock no se toca: se modifica solo
// vía movimientos.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		product.Name = textutil.Clean(*in.Nombre)
	}
	if in.Descripcion != nil {
		product.Description = textutil.Clean(*in.Descripcion)
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Precio
	}
	if in.IDProveedor != nil {
		product.SupplierID = in.IDProveedor
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// PreviewDeletion devuelve el impacto de eliminar el producto (dry-run).
func (uc *ProductUseCase) PreviewDeletion(ctx context.Context, id int64) (inventory.DeletionPreview, error) {
	return uc.engine.PreviewProductDeletion(ctx, id)
}

// Delete elimina el producto y todos sus dependientes en cascada atómica.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (inventory.DeletionReport, error) {
	return uc.engine.ExecuteProductDeletion(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Nombre:      p.Name,
		Descripcion: p.Description,
		Stock:       p.Stock,
		Precio:      p.Price,
		IDProveedor: p.SupplierID,
	}
}
