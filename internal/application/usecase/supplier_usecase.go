package usecase

import (
	"context"

	"github.com/factora/pos-api/internal/application/dto"
	"github.com/factora/pos-api/internal/domain"
	"github.com/factora/pos-api/internal/domain/entity"
	"github.com/factora/pos-api/internal/domain/repository"
	"github.com/factora/pos-api/pkg/textutil"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo  repository.SupplierRepository
	alloc repository.IDAllocator
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, alloc repository.IDAllocator) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, alloc: alloc}
}

// Create crea un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier := &entity.Supplier{
		Name:    textutil.Clean(in.Nombre),
		Contact: textutil.Clean(in.Contacto),
		Phone:   textutil.Clean(in.Telefono),
		Email:   textutil.Clean(in.Correo),
	}
	err := withAllocRetry(func() error {
		id, err := uc.alloc.Next(ctx, repository.EntitySupplier)
		if err != nil {
			return err
		}
		supplier.ID = id
		return uc.repo.Create(ctx, supplier)
	})
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.SupplierResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return items, nil
}

// Update actualiza los campos presentes.
func (uc *SupplierUseCase) Update(ctx context.Context, id int64, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		supplier.Name = textutil.Clean(*in.Nombre)
	}
	if in.Contacto != nil {
		supplier.Contact = textutil.Clean(*in.Contacto)
	}
	if in.Telefono != nil {
		supplier.Phone = textutil.Clean(*in.Telefono)
	}
	if in.Correo != nil {
		supplier.Email = textutil.Clean(*in.Correo)
	}
	if err := uc.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina un proveedor. Los productos asociados conservan su fila con
// la referencia en NULL.
func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:       s.ID,
		Nombre:   s.Name,
		Contacto: s.Contact,
		Telefono: s.Phone,
		Correo:   s.Email,
	}
}
