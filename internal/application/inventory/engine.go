package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/factora/pos-api/internal/domain"
	"github.com/factora/pos-api/internal/domain/entity"
	"github.com/factora/pos-api/internal/domain/repository"
)

// Config opciones del motor de consistencia.
type Config struct {
	// TxTimeout acota la duración de cada operación pública; vencido el plazo
	// la transacción se revierte en lugar de retener recursos.
	TxTimeout time.Duration
	// MaxAllocRetries reintentos ante colisión de identificador (23505) antes
	// de escalar ErrConflict al caller.
	MaxAllocRetries int
	// RejectNegativeStock rechaza salidas que dejarían stock bajo cero.
	RejectNegativeStock bool
}

func (c *Config) defaults() {
	if c.TxTimeout <= 0 {
		c.TxTimeout = 5 * time.Second
	}
	if c.MaxAllocRetries <= 0 {
		c.MaxAllocRetries = 3
	}
}

// Engine es la fachada del motor de consistencia de inventario: compone el
// asignador de identificadores, el libro de stock y el coordinador de
// eliminación. Cada operación pública corre dentro de una única transacción
// (TxRunner): asignación de ID, inserciones y updates/deletes asociados se
// confirman juntos o se revierten juntos.
type Engine struct {
	txRunner    TxRunner
	ledger      StockLedger
	coordinator DeletionCoordinator
	cfg         Config
	now         func() time.Time
}

// NewEngine construye el motor.
func NewEngine(txRunner TxRunner, cfg Config) *Engine {
	cfg.defaults()
	return &Engine{
		txRunner: txRunner,
		ledger:   StockLedger{RejectNegativeStock: cfg.RejectNegativeStock},
		cfg:      cfg,
		now:      time.Now,
	}
}

// ProductInput entrada para crear un producto.
type ProductInput struct {
	Name        string
	Description string
	Stock       int64 // stock inicial declarado
	Price       decimal.Decimal
	SupplierID  *int64
}

// Validate verifica las precondiciones de creación.
func (in ProductInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.Price.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

// CreateProduct asigna un ID y persiste el producto, en una transacción.
func (e *Engine) CreateProduct(ctx context.Context, in ProductInput) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	var id int64
	err := e.runWithRetry(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.MovementRepository,
		_ repository.WarrantyRepository,
		_ repository.SaleRepository,
		alloc repository.IDAllocator,
	) error {
		next, err := alloc.Next(ctx, repository.EntityProduct)
		if err != nil {
			return err
		}
		product := &entity.Product{
			ID:          next,
			Name:        in.Name,
			Description: in.Description,
			Stock:       in.Stock,
			Price:       in.Price,
			SupplierID:  in.SupplierID,
		}
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		id = next
		return nil
	})
	return id, err
}

// CreateMovement registra un movimiento ENTRADA/SALIDA y ajusta el stock del
// producto referenciado, todo dentro de una transacción. Devuelve el ID del
// movimiento; el caller puede re-derivar el stock releyendo el producto.
func (e *Engine) CreateMovement(ctx context.Context, in MovementInput) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	var id int64
	err := e.runWithRetry(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
		_ repository.WarrantyRepository,
		_ repository.SaleRepository,
		alloc repository.IDAllocator,
	) error {
		movID, err := e.ledger.RecordMovement(ctx, productRepo, movRepo, alloc, in, e.now())
		if err != nil {
			return err
		}
		id = movID
		return nil
	})
	return id, err
}

// RecordMovementInTx registra un movimiento usando repositorios ya atados a la
// transacción del caller (integración venta-inventario: la venta y sus salidas
// de stock comparten una sola transacción).
func (e *Engine) RecordMovementInTx(
	ctx context.Context,
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	alloc repository.IDAllocator,
	in MovementInput,
	now time.Time,
) (int64, error) {
	return e.ledger.RecordMovement(ctx, productRepo, movRepo, alloc, in, now)
}

// PreviewProductDeletion devuelve el impacto de eliminar el producto sin
// mutar nada: nombre y conteo de dependientes por tabla.
func (e *Engine) PreviewProductDeletion(ctx context.Context, productID int64) (DeletionPreview, error) {
	if productID <= 0 {
		return DeletionPreview{}, domain.ErrInvalidInput
	}
	ctx, cancel := context.WithTimeout(ctx, e.cfg.TxTimeout)
	defer cancel()

	var preview DeletionPreview
	err := e.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
		warrantyRepo repository.WarrantyRepository,
		saleRepo repository.SaleRepository,
		_ repository.IDAllocator,
	) error {
		p, err := e.coordinator.Preview(ctx, productRepo, movRepo, warrantyRepo, saleRepo, productID)
		if err != nil {
			return err
		}
		preview = p
		return nil
	})
	return preview, err
}

// ExecuteProductDeletion elimina el producto y todas sus filas dependientes
// como unidad atómica y reporta cuántas filas se eliminaron por tabla.
func (e *Engine) ExecuteProductDeletion(ctx context.Context, productID int64) (DeletionReport, error) {
	if productID <= 0 {
		return DeletionReport{}, domain.ErrInvalidInput
	}
	ctx, cancel := context.WithTimeout(ctx, e.cfg.TxTimeout)
	defer cancel()

	var report DeletionReport
	err := e.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
		warrantyRepo repository.WarrantyRepository,
		saleRepo repository.SaleRepository,
		_ repository.IDAllocator,
	) error {
		r, err := e.coordinator.Execute(ctx, productRepo, movRepo, warrantyRepo, saleRepo, productID)
		if err != nil {
			return err
		}
		report = r
		return nil
	})
	return report, err
}

// runWithRetry ejecuta fn en una transacción acotada por TxTimeout y la
// reintenta completa cuando la restricción de unicidad detecta una colisión
// de IDs bajo concurrencia. Agotados los reintentos escala ErrConflict.
func (e *Engine) runWithRetry(ctx context.Context, fn func(
	repository.ProductRepository,
	repository.MovementRepository,
	repository.WarrantyRepository,
	repository.SaleRepository,
	repository.IDAllocator,
) error) error {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.TxTimeout)
	defer cancel()

	var err error
	for attempt := 0; attempt < e.cfg.MaxAllocRetries; attempt++ {
		err = e.txRunner.Run(ctx, fn)
		if !errors.Is(err, domain.ErrDuplicate) {
			return err
		}
	}
	return domain.ErrConflict
}
