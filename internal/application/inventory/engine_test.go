package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factora/pos-api/internal/application/inventory"
	"github.com/factora/pos-api/internal/domain"
	"github.com/factora/pos-api/internal/domain/entity"
	"github.com/factora/pos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newTestEngine(fs *fakeStore) *inventory.Engine {
	return inventory.NewEngine(fs, inventory.Config{
		TxTimeout:       time.Second,
		MaxAllocRetries: 3,
	})
}

func seedProductWithStock(fs *fakeStore, id, stock int64) {
	fs.seedProduct(entity.Product{
		ID:    id,
		Name:  "Lámpara de escritorio",
		Stock: stock,
		Price: decimal.NewFromInt(25000),
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos: efecto sobre el stock
// ──────────────────────────────────────────────────────────────────────────────

// Una ENTRADA suma su cantidad al stock y una SALIDA la resta; tras cualquier
// secuencia el stock debe ser el inicial más la suma firmada de movimientos.
func TestCreateMovement_EntradaYSalidaAjustanStock(t *testing.T) {
	fs := newFakeStore()
	seedProductWithStock(fs, 1, 10)
	eng := newTestEngine(fs)
	ctx := context.Background()

	_, err := eng.CreateMovement(ctx, inventory.MovementInput{
		ProductID: 1, Kind: entity.MovementKindEntrada, Quantity: 5,
	})
	require.NoError(t, err)

	p, ok := fs.productByID(1)
	require.True(t, ok)
	assert.Equal(t, int64(15), p.Stock, "ENTRADA de 5 sobre stock 10 debe dejar 15")

	_, err = eng.CreateMovement(ctx, inventory.MovementInput{
		ProductID: 1, Kind: entity.MovementKindSalida, Quantity: 20,
	})
	require.NoError(t, err, "por defecto una SALIDA mayor que el stock se acepta")

	p, _ = fs.productByID(1)
	assert.Equal(t, int64(-5), p.Stock, "el stock puede quedar negativo en modo permisivo")
	assert.Equal(t, 2, fs.countMovements(1), "cada operación debe dejar exactamente un movimiento")
}

// El stock final siempre es el inicial más la suma firmada de los movimientos
// registrados, sin importar el orden de la secuencia.
func TestCreateMovement_InvarianteSumaFirmada(t *testing.T) {
	fs := newFakeStore()
	seedProductWithStock(fs, 7, 100)
	eng := newTestEngine(fs)
	ctx := context.Background()

	seq := []inventory.MovementInput{
		{ProductID: 7, Kind: entity.MovementKindSalida, Quantity: 30},
		{ProductID: 7, Kind: entity.MovementKindEntrada, Quantity: 12},
		{ProductID: 7, Kind: entity.MovementKindSalida, Quantity: 95},
		{ProductID: 7, Kind: entity.MovementKindEntrada, Quantity: 3},
	}
	var delta int64
	for _, in := range seq {
		_, err := eng.CreateMovement(ctx, in)
		require.NoError(t, err)
		m := entity.Movement{Kind: in.Kind, Quantity: in.Quantity}
		delta += m.Delta()
	}

	p, _ := fs.productByID(7)
	assert.Equal(t, 100+delta, p.Stock)
	assert.Equal(t, len(seq), fs.countMovements(7))
}

// Con RejectNegativeStock encendido, una SALIDA que dejaría stock negativo se
// rechaza sin insertar movimiento ni tocar el stock.
func TestCreateMovement_RechazaStockNegativo(t *testing.T) {
	fs := newFakeStore()
	seedProductWithStock(fs, 1, 10)
	eng := inventory.NewEngine(fs, inventory.Config{
		TxTimeout:           time.Second,
		MaxAllocRetries:     3,
		RejectNegativeStock: true,
	})

	_, err := eng.CreateMovement(context.Background(), inventory.MovementInput{
		ProductID: 1, Kind: entity.MovementKindSalida, Quantity: 11,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := fs.productByID(1)
	assert.Equal(t, int64(10), p.Stock, "el stock no debe cambiar tras un rechazo")
	assert.Equal(t, 0, fs.countMovements(1), "no debe quedar ningún movimiento registrado")
}

// Un movimiento sobre un producto inexistente es ErrNotFound y no deja rastro.
func TestCreateMovement_ProductoInexistente(t *testing.T) {
	fs := newFakeStore()
	eng := newTestEngine(fs)

	_, err := eng.CreateMovement(context.Background(), inventory.MovementInput{
		ProductID: 99, Kind: entity.MovementKindEntrada, Quantity: 1,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, fs.countMovements(99))
}

func TestCreateMovement_EntradasInvalidas(t *testing.T) {
	fs := newFakeStore()
	seedProductWithStock(fs, 1, 10)
	eng := newTestEngine(fs)
	ctx := context.Background()

	cases := []struct {
		name string
		in   inventory.MovementInput
	}{
		{"producto cero", inventory.MovementInput{ProductID: 0, Kind: "ENTRADA", Quantity: 1}},
		{"tipo desconocido", inventory.MovementInput{ProductID: 1, Kind: "AJUSTE", Quantity: 1}},
		{"tipo en minúsculas", inventory.MovementInput{ProductID: 1, Kind: "entrada", Quantity: 1}},
		{"cantidad cero", inventory.MovementInput{ProductID: 1, Kind: "SALIDA", Quantity: 0}},
		{"cantidad negativa", inventory.MovementInput{ProductID: 1, Kind: "SALIDA", Quantity: -4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := eng.CreateMovement(ctx, tc.in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Equal(t, 0, fs.countMovements(1), "ninguna entrada inválida debe persistir")
}

// ──────────────────────────────────────────────────────────────────────────────
// Asignación de identificadores
// ──────────────────────────────────────────────────────────────────────────────

// Movimientos concurrentes sobre el mismo producto obtienen IDs distintos y
// el stock final refleja todos los deltas.
func TestCreateMovement_ConcurrenciaIDsDistintos(t *testing.T) {
	fs := newFakeStore()
	seedProductWithStock(fs, 1, 0)
	eng := newTestEngine(fs)

	const n = 25
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := eng.CreateMovement(context.Background(), inventory.MovementInput{
				ProductID: 1, Kind: entity.MovementKindEntrada, Quantity: 2,
			})
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "ID repetido: %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	p, _ := fs.productByID(1)
	assert.Equal(t, int64(2*n), p.Stock)
	assert.Equal(t, n, fs.countMovements(1))
}

// Una colisión de ID (dos txs que calcularon el mismo MAX+1) se resuelve
// reintentando la transacción completa; el caller no la observa.
func TestCreateProduct_ReintentaTrasColision(t *testing.T) {
	fs := newFakeStore()
	seedProductWithStock(fs, 1, 0)
	fs.allocCollisions[repository.EntityProduct] = 1
	eng := newTestEngine(fs)

	id, err := eng.CreateProduct(context.Background(), inventory.ProductInput{
		Name:  "Teclado mecánico",
		Price: decimal.NewFromInt(45000),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
}

// Agotados los reintentos, la operación escala ErrConflict sin persistir nada.
func TestCreateProduct_ConflictoTrasAgotarReintentos(t *testing.T) {
	fs := newFakeStore()
	seedProductWithStock(fs, 1, 0)
	fs.allocCollisions[repository.EntityProduct] = 10
	eng := newTestEngine(fs)

	_, err := eng.CreateProduct(context.Background(), inventory.ProductInput{
		Name:  "Teclado mecánico",
		Price: decimal.NewFromInt(45000),
	})
	require.ErrorIs(t, err, domain.ErrConflict)

	_, exists := fs.productByID(2)
	assert.False(t, exists, "ningún producto nuevo debe quedar persistido")
}

func TestCreateProduct_Validacion(t *testing.T) {
	fs := newFakeStore()
	eng := newTestEngine(fs)
	ctx := context.Background()

	_, err := eng.CreateProduct(ctx, inventory.ProductInput{Name: "   "})
	require.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")

	_, err = eng.CreateProduct(ctx, inventory.ProductInput{Name: "Mouse", Stock: -1})
	require.ErrorIs(t, err, domain.ErrInvalidInput, "stock inicial negativo")

	_, err = eng.CreateProduct(ctx, inventory.ProductInput{
		Name: "Mouse", Price: decimal.NewFromInt(-1),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Vista previa de eliminación
// ──────────────────────────────────────────────────────────────────────────────

func seedProductWithDependents(fs *fakeStore) {
	seedProductWithStock(fs, 1, 10)
	fs.seedMovement(entity.Movement{ID: 1, ProductID: 1, Kind: "ENTRADA", Quantity: 10, Date: time.Now()})
	fs.seedMovement(entity.Movement{ID: 2, ProductID: 1, Kind: "SALIDA", Quantity: 4, Date: time.Now()})
	fs.seedWarranty(entity.Warranty{ID: 1, ProductID: 1, Status: entity.WarrantyStatusAbierta})
	fs.seedSaleLine(entity.SaleLine{ID: 1, SaleID: 1, ProductID: 1, Quantity: 1})
	fs.seedSaleLine(entity.SaleLine{ID: 2, SaleID: 1, ProductID: 1, Quantity: 2})
	fs.seedSaleLine(entity.SaleLine{ID: 3, SaleID: 2, ProductID: 1, Quantity: 1})

	// otro producto con su propio historial, que nunca debe verse afectado
	fs.seedProduct(entity.Product{ID: 2, Name: "Monitor 24\"", Stock: 3, Price: decimal.NewFromInt(120000)})
	fs.seedMovement(entity.Movement{ID: 3, ProductID: 2, Kind: "ENTRADA", Quantity: 3, Date: time.Now()})
	fs.seedSaleLine(entity.SaleLine{ID: 4, SaleID: 2, ProductID: 2, Quantity: 1})
}

func TestPreviewProductDeletion_CuentaDependientes(t *testing.T) {
	fs := newFakeStore()
	seedProductWithDependents(fs)
	eng := newTestEngine(fs)

	preview, err := eng.PreviewProductDeletion(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Lámpara de escritorio", preview.ProductName)
	assert.Equal(t, int64(2), preview.Dependents.Movements)
	assert.Equal(t, int64(1), preview.Dependents.Warranties)
	assert.Equal(t, int64(3), preview.Dependents.SaleLines)
	assert.Equal(t, int64(6), preview.Dependents.Total)
}

// La vista previa es de solo lectura: repetirla produce el mismo resultado y
// el producto sigue existiendo con todos sus dependientes.
func TestPreviewProductDeletion_NoMutaNada(t *testing.T) {
	fs := newFakeStore()
	seedProductWithDependents(fs)
	eng := newTestEngine(fs)
	ctx := context.Background()

	first, err := eng.PreviewProductDeletion(ctx, 1)
	require.NoError(t, err)
	second, err := eng.PreviewProductDeletion(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	_, exists := fs.productByID(1)
	assert.True(t, exists)
	assert.Equal(t, 2, fs.countMovements(1))
	assert.Equal(t, 1, fs.countWarranties(1))
	assert.Equal(t, 3, fs.countSaleLines(1))
}

func TestPreviewProductDeletion_ProductoInexistente(t *testing.T) {
	fs := newFakeStore()
	eng := newTestEngine(fs)

	_, err := eng.PreviewProductDeletion(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminación en cascada
// ──────────────────────────────────────────────────────────────────────────────

func TestExecuteProductDeletion_CascadaCompleta(t *testing.T) {
	fs := newFakeStore()
	seedProductWithDependents(fs)
	eng := newTestEngine(fs)
	ctx := context.Background()

	report, err := eng.ExecuteProductDeletion(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(2), report.Deleted.Movements)
	assert.Equal(t, int64(1), report.Deleted.Warranties)
	assert.Equal(t, int64(3), report.Deleted.SaleLines)
	assert.Equal(t, int64(6), report.Deleted.Total)

	_, exists := fs.productByID(1)
	assert.False(t, exists, "el producto debe desaparecer")
	assert.Equal(t, 0, fs.countMovements(1))
	assert.Equal(t, 0, fs.countWarranties(1))
	assert.Equal(t, 0, fs.countSaleLines(1))

	// el otro producto y su historial quedan intactos
	_, exists = fs.productByID(2)
	assert.True(t, exists)
	assert.Equal(t, 1, fs.countMovements(2))
	assert.Equal(t, 1, fs.countSaleLines(2))

	// la vista previa posterior reporta que ya no existe
	_, err = eng.PreviewProductDeletion(ctx, 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// Un fallo a mitad de cascada revierte la transacción completa: ninguna
// eliminación parcial es observable.
func TestExecuteProductDeletion_FalloRevierteTodo(t *testing.T) {
	fs := newFakeStore()
	seedProductWithDependents(fs)
	fs.failOn("detalle_venta.delete_by_product", errors.New("conexión perdida"))
	eng := newTestEngine(fs)

	_, err := eng.ExecuteProductDeletion(context.Background(), 1)
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrNotFound)

	// aunque movimientos y garantías se borraron dentro de la tx, el rollback
	// los restaura todos
	_, exists := fs.productByID(1)
	assert.True(t, exists)
	assert.Equal(t, 2, fs.countMovements(1))
	assert.Equal(t, 1, fs.countWarranties(1))
	assert.Equal(t, 3, fs.countSaleLines(1))
}

func TestExecuteProductDeletion_ProductoInexistente(t *testing.T) {
	fs := newFakeStore()
	eng := newTestEngine(fs)

	_, err := eng.ExecuteProductDeletion(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExecuteProductDeletion_SinDependientes(t *testing.T) {
	fs := newFakeStore()
	seedProductWithStock(fs, 5, 0)
	eng := newTestEngine(fs)

	report, err := eng.ExecuteProductDeletion(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), report.Deleted.Total)

	_, exists := fs.productByID(5)
	assert.False(t, exists)
}
