package usecase

import (
	"context"

	"github.com/factora/pos-api/internal/application/dto"
	"github.com/factora/pos-api/internal/domain"
	"github.com/factora/pos-api/internal/domain/entity"
	"github.com/factora/pos-api/internal/domain/repository"
	"github.com/factora/pos-api/pkg/textutil"
)

// ClientUseCase casos de uso CRUD para clientes. El update usa un esquema
// declarado de campos opcionales (punteros) en lugar de descubrir columnas
// en runtime como hacía el sistema anterior.
type ClientUseCase struct {
	repo  repository.ClientRepository
	alloc repository.IDAllocator
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, alloc repository.IDAllocator) *ClientUseCase {
	return &ClientUseCase{repo: repo, alloc: alloc}
}

// Create crea un cliente.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	client := &entity.Client{
		Name:    textutil.Clean(in.Nombre),
		RUT:     textutil.Clean(in.RUT),
		Email:   textutil.Clean(in.Correo),
		Phone:   textutil.Clean(in.Telefono),
		Address: textutil.Clean(in.Direccion),
	}
	err := withAllocRetry(func() error {
		id, err := uc.alloc.Next(ctx, repository.EntityClient)
		if err != nil {
			return err
		}
		client.ID = id
		return uc.repo.Create(ctx, client)
	})
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List lista clientes con paginación.
func (uc *ClientUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.ClientResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return items, nil
}

// Update actualiza los campos presentes.
func (uc *ClientUseCase) Update(ctx context.Context, id int64, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		client.Name = textutil.Clean(*in.Nombre)
	}
	if in.RUT != nil {
		client.RUT = textutil.Clean(*in.RUT)
	}
	if in.Correo != nil {
		client.Email = textutil.Clean(*in.Correo)
	}
	if in.Telefono != nil {
		client.Phone = textutil.Clean(*in.Telefono)
	}
	if in.Direccion != nil {
		client.Address = textutil.Clean(*in.Direccion)
	}
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente por ID.
func (uc *ClientUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Nombre:    c.Name,
		RUT:       c.RUT,
		Correo:    c.Email,
		Telefono:  c.Phone,
		Direccion: c.Address,
	}
}
