package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/factora/pos-api/internal/application/dto"
	"github.com/factora/pos-api/internal/application/inventory"
	"github.com/factora/pos-api/internal/domain"
	"github.com/factora/pos-api/internal/domain/entity"
	"github.com/factora/pos-api/internal/domain/repository"
)

// ReceiptGenerator genera la representación PDF de una venta.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, sale *entity.Sale, productNames map[int64]string, cashier string) ([]byte, error)
}

// SaleUseCase registra ventas del punto de venta. La cabecera, las líneas de
// detalle y las salidas de stock correspondientes comparten una sola
// transacción: o se registra la venta completa o no se registra nada.
type SaleUseCase struct {
	txRunner    inventory.TxRunner
	engine      *inventory.Engine
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	receipts    ReceiptGenerator
	now         func() time.Time
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner inventory.TxRunner,
	engine *inventory.Engine,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	receipts ReceiptGenerator,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:    txRunner,
		engine:      engine,
		saleRepo:    saleRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		receipts:    receipts,
		now:         time.Now,
	}
}

// Create registra la venta: bloquea y lee el precio de cada producto, inserta
// cabecera y líneas, y registra una SALIDA por línea a través del motor de
// inventario (misma transacción).
func (uc *SaleUseCase) Create(ctx context.Context, userID int64, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Lineas) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, l := range in.Lineas {
		if l.IDProducto <= 0 || l.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	var out *dto.SaleResponse
	err := withAllocRetry(func() error {
		return uc.txRunner.Run(ctx, func(
			productRepo repository.ProductRepository,
			movRepo repository.MovementRepository,
			_ repository.WarrantyRepository,
			saleRepo repository.SaleRepository,
			alloc repository.IDAllocator,
		) error {
			now := uc.now()

			// Primera pasada: bloquear productos, resolver precios y total.
			total := decimal.Zero
			lines := make([]entity.SaleLine, 0, len(in.Lineas))
			for _, l := range in.Lineas {
				product, err := productRepo.GetByIDForUpdate(ctx, l.IDProducto)
				if err != nil {
					return err
				}
				if product == nil {
					return domain.ErrNotFound
				}
				subtotal := product.Price.Mul(decimal.NewFromInt(l.Cantidad))
				lines = append(lines, entity.SaleLine{
					ProductID: l.IDProducto,
					Quantity:  l.Cantidad,
					UnitPrice: product.Price,
					Subtotal:  subtotal,
				})
				total = total.Add(subtotal)
			}

			saleID, err := alloc.Next(ctx, repository.EntitySale)
			if err != nil {
				return err
			}
			sale := &entity.Sale{ID: saleID, Date: now, UserID: userID, Total: total}
			if err := saleRepo.Create(ctx, sale); err != nil {
				return err
			}

			// Segunda pasada: líneas de detalle y salidas de stock.
			for i := range lines {
				lines[i].SaleID = saleID
				lineID, err := alloc.Next(ctx, repository.EntitySaleLine)
				if err != nil {
					return err
				}
				lines[i].ID = lineID
				if err := saleRepo.CreateLine(ctx, &lines[i]); err != nil {
					return err
				}
				if _, err := uc.engine.RecordMovementInTx(ctx, productRepo, movRepo, alloc, inventory.MovementInput{
					ProductID: lines[i].ProductID,
					Kind:      entity.MovementKindSalida,
					Quantity:  lines[i].Quantity,
				}, now); err != nil {
					return err
				}
			}

			sale.Lines = lines
			out = toSaleResponse(sale, true)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene una venta con sus líneas.
func (uc *SaleUseCase) GetByID(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale, true), nil
}

// List lista ventas por fecha descendente.
func (uc *SaleUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	list, err := uc.saleRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s, false))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Receipt genera el recibo PDF de la venta.
func (uc *SaleUseCase) Receipt(ctx context.Context, id int64) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	names := make(map[int64]string, len(sale.Lines))
	for _, l := range sale.Lines {
		if _, ok := names[l.ProductID]; ok {
			continue
		}
		product, err := uc.productRepo.GetByID(ctx, l.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			names[l.ProductID] = product.Name
		}
	}

	cashier := ""
	if user, err := uc.userRepo.GetByID(ctx, sale.UserID); err == nil && user != nil {
		cashier = user.Name
	}
	return uc.receipts.GenerateReceipt(ctx, sale, names, cashier)
}

func toSaleResponse(s *entity.Sale, withLines bool) *dto.SaleResponse {
	out := &dto.SaleResponse{
		ID:        s.ID,
		Fecha:     s.Date,
		IDUsuario: s.UserID,
		Total:     s.Total,
	}
	if withLines {
		for _, l := range s.Lines {
			out.Lineas = append(out.Lineas, dto.SaleLineResponse{
				ID:         l.ID,
				IDProducto: l.ProductID,
				Cantidad:   l.Quantity,
				Precio:     l.UnitPrice,
				Subtotal:   l.Subtotal,
			})
		}
	}
	return out
}
