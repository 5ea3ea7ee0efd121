package inventory_test

import (
	"context"
	"sort"
	"sync"

	"github.com/factora/pos-api/internal/domain"
	"github.com/factora/pos-api/internal/domain/entity"
	"github.com/factora/pos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de persistencia en memoria.
//
// fakeStore imita la semántica transaccional del TxRunner real: cada Run opera
// sobre una copia del estado y solo la publica si fn termina sin error. Un
// error a mitad de cascada deja el estado base intacto, igual que un ROLLBACK.
// El mutex serializa transacciones completas, como lo hace el bloqueo de fila
// (SELECT FOR UPDATE) en PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type storeState struct {
	products   map[int64]entity.Product
	movements  map[int64]entity.Movement
	warranties map[int64]entity.Warranty
	sales      map[int64]entity.Sale
	saleLines  map[int64]entity.SaleLine
}

func newStoreState() *storeState {
	return &storeState{
		products:   make(map[int64]entity.Product),
		movements:  make(map[int64]entity.Movement),
		warranties: make(map[int64]entity.Warranty),
		sales:      make(map[int64]entity.Sale),
		saleLines:  make(map[int64]entity.SaleLine),
	}
}

func (s *storeState) clone() *storeState {
	c := newStoreState()
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.movements {
		c.movements[k] = v
	}
	for k, v := range s.warranties {
		c.warranties[k] = v
	}
	for k, v := range s.sales {
		c.sales[k] = v
	}
	for k, v := range s.saleLines {
		c.saleLines[k] = v
	}
	return c
}

type fakeStore struct {
	mu    sync.Mutex
	state *storeState

	// failures inyecta un error en la operación indicada (clave "tabla.op").
	failures map[string]error

	// allocCollisions fuerza que el asignador devuelva un ID ya ocupado en
	// las próximas n asignaciones, simulando la carrera MAX+1 entre txs.
	allocCollisions map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		state:           newStoreState(),
		failures:        make(map[string]error),
		allocCollisions: make(map[string]int),
	}
}

func (fs *fakeStore) failOn(op string, err error) {
	fs.failures[op] = err
}

func (fs *fakeStore) fail(op string) error {
	return fs.failures[op]
}

// seedProduct inserta un producto directamente en el estado base.
func (fs *fakeStore) seedProduct(p entity.Product) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.state.products[p.ID] = p
}

// seedMovement, seedWarranty y seedSaleLine pueblan dependientes para los
// tests de cascada.
func (fs *fakeStore) seedMovement(m entity.Movement) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.state.movements[m.ID] = m
}

func (fs *fakeStore) seedWarranty(w entity.Warranty) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.state.warranties[w.ID] = w
}

func (fs *fakeStore) seedSaleLine(l entity.SaleLine) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.state.saleLines[l.ID] = l
}

func (fs *fakeStore) productByID(id int64) (entity.Product, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	p, ok := fs.state.products[id]
	return p, ok
}

func (fs *fakeStore) countMovements(productID int64) int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	n := 0
	for _, m := range fs.state.movements {
		if m.ProductID == productID {
			n++
		}
	}
	return n
}

func (fs *fakeStore) countWarranties(productID int64) int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	n := 0
	for _, w := range fs.state.warranties {
		if w.ProductID == productID {
			n++
		}
	}
	return n
}

func (fs *fakeStore) countSaleLines(productID int64) int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	n := 0
	for _, l := range fs.state.saleLines {
		if l.ProductID == productID {
			n++
		}
	}
	return n
}

// Run implementa inventory.TxRunner con semántica de commit/rollback.
func (fs *fakeStore) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	warrantyRepo repository.WarrantyRepository,
	saleRepo repository.SaleRepository,
	alloc repository.IDAllocator,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()

	work := fs.state.clone()
	err := fn(
		&fakeProductRepo{fs: fs, st: work},
		&fakeMovementRepo{fs: fs, st: work},
		&fakeWarrantyRepo{fs: fs, st: work},
		&fakeSaleRepo{fs: fs, st: work},
		&fakeAllocator{fs: fs, st: work},
	)
	if err != nil {
		return err
	}
	fs.state = work
	return nil
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type fakeProductRepo struct {
	fs *fakeStore
	st *storeState
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if err := r.fs.fail("productos.create"); err != nil {
		return err
	}
	if _, exists := r.st.products[p.ID]; exists {
		return domain.ErrDuplicate
	}
	r.st.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	if err := r.fs.fail("productos.get"); err != nil {
		return nil, err
	}
	p, ok := r.st.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProductRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	ids := make([]int64, 0, len(r.st.products))
	for id := range r.st.products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []*entity.Product
	for i, id := range ids {
		if i < offset || len(out) >= limit {
			continue
		}
		p := r.st.products[id]
		out = append(out, &p)
	}
	return out, nil
}

func (r *fakeProductRepo) Search(ctx context.Context, _ string, limit int) ([]*entity.Product, error) {
	return r.List(ctx, limit, 0)
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.st.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.st.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) AdjustStock(_ context.Context, id, delta int64) error {
	if err := r.fs.fail("productos.adjust_stock"); err != nil {
		return err
	}
	p, ok := r.st.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock += delta
	r.st.products[id] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	if err := r.fs.fail("productos.delete"); err != nil {
		return err
	}
	if _, ok := r.st.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.st.products, id)
	return nil
}

// ── MovementRepository ────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	fs *fakeStore
	st *storeState
}

var _ repository.MovementRepository = (*fakeMovementRepo)(nil)

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	if err := r.fs.fail("movimientos.create"); err != nil {
		return err
	}
	if _, exists := r.st.movements[m.ID]; exists {
		return domain.ErrDuplicate
	}
	r.st.movements[m.ID] = *m
	return nil
}

func (r *fakeMovementRepo) GetByID(_ context.Context, id int64) (*entity.Movement, error) {
	m, ok := r.st.movements[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *fakeMovementRepo) List(_ context.Context, limit, offset int) ([]*entity.Movement, error) {
	ids := make([]int64, 0, len(r.st.movements))
	for id := range r.st.movements {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []*entity.Movement
	for i, id := range ids {
		if i < offset || len(out) >= limit {
			continue
		}
		m := r.st.movements[id]
		out = append(out, &m)
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByProduct(_ context.Context, productID int64, limit, _ int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for id := range r.st.movements {
		m := r.st.movements[id]
		if m.ProductID == productID && len(out) < limit {
			out = append(out, &m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) CountByProduct(_ context.Context, productID int64) (int64, error) {
	if err := r.fs.fail("movimientos.count"); err != nil {
		return 0, err
	}
	var n int64
	for _, m := range r.st.movements {
		if m.ProductID == productID {
			n++
		}
	}
	return n, nil
}

func (r *fakeMovementRepo) DeleteByProduct(_ context.Context, productID int64) (int64, error) {
	if err := r.fs.fail("movimientos.delete_by_product"); err != nil {
		return 0, err
	}
	var n int64
	for id, m := range r.st.movements {
		if m.ProductID == productID {
			delete(r.st.movements, id)
			n++
		}
	}
	return n, nil
}

// ── WarrantyRepository ────────────────────────────────────────────────────────

type fakeWarrantyRepo struct {
	fs *fakeStore
	st *storeState
}

var _ repository.WarrantyRepository = (*fakeWarrantyRepo)(nil)

func (r *fakeWarrantyRepo) Create(_ context.Context, w *entity.Warranty) error {
	if _, exists := r.st.warranties[w.ID]; exists {
		return domain.ErrDuplicate
	}
	r.st.warranties[w.ID] = *w
	return nil
}

func (r *fakeWarrantyRepo) List(_ context.Context, limit, _ int) ([]*entity.Warranty, error) {
	var out []*entity.Warranty
	for id := range r.st.warranties {
		w := r.st.warranties[id]
		if len(out) < limit {
			out = append(out, &w)
		}
	}
	return out, nil
}

func (r *fakeWarrantyRepo) ListByProduct(_ context.Context, productID int64) ([]*entity.Warranty, error) {
	var out []*entity.Warranty
	for id := range r.st.warranties {
		w := r.st.warranties[id]
		if w.ProductID == productID {
			out = append(out, &w)
		}
	}
	return out, nil
}

func (r *fakeWarrantyRepo) CountByProduct(_ context.Context, productID int64) (int64, error) {
	if err := r.fs.fail("garantias.count"); err != nil {
		return 0, err
	}
	var n int64
	for _, w := range r.st.warranties {
		if w.ProductID == productID {
			n++
		}
	}
	return n, nil
}

func (r *fakeWarrantyRepo) DeleteByProduct(_ context.Context, productID int64) (int64, error) {
	if err := r.fs.fail("garantias.delete_by_product"); err != nil {
		return 0, err
	}
	var n int64
	for id, w := range r.st.warranties {
		if w.ProductID == productID {
			delete(r.st.warranties, id)
			n++
		}
	}
	return n, nil
}

// ── SaleRepository ────────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	fs *fakeStore
	st *storeState
}

var _ repository.SaleRepository = (*fakeSaleRepo)(nil)

func (r *fakeSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	if _, exists := r.st.sales[s.ID]; exists {
		return domain.ErrDuplicate
	}
	r.st.sales[s.ID] = *s
	return nil
}

func (r *fakeSaleRepo) CreateLine(_ context.Context, l *entity.SaleLine) error {
	if _, exists := r.st.saleLines[l.ID]; exists {
		return domain.ErrDuplicate
	}
	r.st.saleLines[l.ID] = *l
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id int64) (*entity.Sale, error) {
	s, ok := r.st.sales[id]
	if !ok {
		return nil, nil
	}
	for lid := range r.st.saleLines {
		l := r.st.saleLines[lid]
		if l.SaleID == id {
			s.Lines = append(s.Lines, l)
		}
	}
	return &s, nil
}

func (r *fakeSaleRepo) List(_ context.Context, limit, _ int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for id := range r.st.sales {
		s := r.st.sales[id]
		if len(out) < limit {
			out = append(out, &s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) CountLinesByProduct(_ context.Context, productID int64) (int64, error) {
	if err := r.fs.fail("detalle_venta.count"); err != nil {
		return 0, err
	}
	var n int64
	for _, l := range r.st.saleLines {
		if l.ProductID == productID {
			n++
		}
	}
	return n, nil
}

func (r *fakeSaleRepo) DeleteLinesByProduct(_ context.Context, productID int64) (int64, error) {
	if err := r.fs.fail("detalle_venta.delete_by_product"); err != nil {
		return 0, err
	}
	var n int64
	for id, l := range r.st.saleLines {
		if l.ProductID == productID {
			delete(r.st.saleLines, id)
			n++
		}
	}
	return n, nil
}

// ── IDAllocator ───────────────────────────────────────────────────────────────

type fakeAllocator struct {
	fs *fakeStore
	st *storeState
}

var _ repository.IDAllocator = (*fakeAllocator)(nil)

func (a *fakeAllocator) Next(_ context.Context, entityKind string) (int64, error) {
	if err := a.fs.fail("alloc." + entityKind); err != nil {
		return 0, err
	}
	max := a.maxID(entityKind)
	// Colisión simulada: devuelve un ID ya ocupado para forzar el reintento.
	if n := a.fs.allocCollisions[entityKind]; n > 0 && max > 0 {
		a.fs.allocCollisions[entityKind] = n - 1
		return max, nil
	}
	return max + 1, nil
}

func (a *fakeAllocator) maxID(entityKind string) int64 {
	var max int64
	switch entityKind {
	case repository.EntityProduct:
		for id := range a.st.products {
			if id > max {
				max = id
			}
		}
	case repository.EntityMovement:
		for id := range a.st.movements {
			if id > max {
				max = id
			}
		}
	case repository.EntityWarranty:
		for id := range a.st.warranties {
			if id > max {
				max = id
			}
		}
	case repository.EntitySale:
		for id := range a.st.sales {
			if id > max {
				max = id
			}
		}
	case repository.EntitySaleLine:
		for id := range a.st.saleLines {
			if id > max {
				max = id
			}
		}
	case repository.EntityUser:
		// sin usuarios en estos fakes
	}
	return max
}
