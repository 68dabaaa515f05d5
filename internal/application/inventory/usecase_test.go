package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papeleria-app/papeleria-api/internal/application/dto"
	"github.com/papeleria-app/papeleria-api/internal/application/inventory"
	"github.com/papeleria-app/papeleria-api/internal/domain"
	"github.com/papeleria-app/papeleria-api/internal/domain/entity"
	"github.com/papeleria-app/papeleria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (f *fakeProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]repository.ProductRecord, int, error) {
	return nil, 0, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*repository.ProductRecord, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return &repository.ProductRecord{Product: *p}, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	delete(f.products, id)
	return p, nil
}

func (f *fakeProductRepo) ListBySupplier(ctx context.Context, supplierID string) ([]entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) ListLowStock(ctx context.Context, threshold int) ([]repository.ProductRecord, error) {
	var out []repository.ProductRecord
	for _, p := range f.products {
		if p.Quantity <= threshold {
			out = append(out, repository.ProductRecord{Product: *p})
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	if p, ok := f.products[id]; ok {
		p.Quantity = quantity
	}
	return nil
}

type fakeStockRepo struct {
	entries []entity.StockEntry
}

func (f *fakeStockRepo) Create(ctx context.Context, entry *entity.StockEntry) error {
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeStockRepo) List(ctx context.Context, productID *string, limit, offset int) ([]repository.StockEntryRecord, error) {
	var out []repository.StockEntryRecord
	for i := len(f.entries) - 1; i >= 0; i-- {
		e := f.entries[i]
		if productID != nil && e.ProductID != *productID {
			continue
		}
		out = append(out, repository.StockEntryRecord{StockEntry: e, ProductName: "Lápiz HB"})
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback sin transacción real; suficiente para
// verificar la lógica del caso de uso.
type fakeTxRunner struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.StockRepository) error) error {
	return fn(f.productRepo, f.stockRepo)
}

func newStockUseCase(t *testing.T, products ...*entity.Product) (*inventory.StockUseCase, *fakeProductRepo, *fakeStockRepo) {
	t.Helper()
	productRepo := newFakeProductRepo(products...)
	stockRepo := &fakeStockRepo{}
	tx := &fakeTxRunner{productRepo: productRepo, stockRepo: stockRepo}
	return inventory.NewStockUseCase(tx, productRepo, stockRepo, 10), productRepo, stockRepo
}

func testProduct(quantity int) *entity.Product {
	return &entity.Product{
		ID:       "11111111-1111-1111-1111-111111111111",
		Name:     "Lápiz HB",
		Price:    decimal.NewFromInt(2),
		Quantity: quantity,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Increase / Decrease
// ──────────────────────────────────────────────────────────────────────────────

func TestStock_Increase_SumaYRegistraEntrada(t *testing.T) {
	p := testProduct(5)
	uc, productRepo, stockRepo := newStockUseCase(t, p)

	out, err := uc.Increase(context.Background(), dto.AdjustStockRequest{ProductID: p.ID, Quantity: 7})
	require.NoError(t, err)

	assert.Equal(t, 5, out.PreviousQuantity)
	assert.Equal(t, 12, out.NewQuantity)
	assert.Equal(t, 12, productRepo.products[p.ID].Quantity, "la cantidad persistida debe actualizarse")

	require.Len(t, stockRepo.entries, 1)
	entry := stockRepo.entries[0]
	assert.Equal(t, entity.ChangeTypeIn, entry.ChangeType)
	assert.Equal(t, 7, entry.QuantityChange)
	assert.Equal(t, 5, entry.PreviousQuantity)
	assert.Equal(t, 12, entry.NewQuantity)
}

func TestStock_Decrease_RestaYRegistraSalida(t *testing.T) {
	p := testProduct(5)
	uc, productRepo, stockRepo := newStockUseCase(t, p)

	out, err := uc.Decrease(context.Background(), dto.AdjustStockRequest{ProductID: p.ID, Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, 5, out.PreviousQuantity)
	assert.Equal(t, 2, out.NewQuantity)
	assert.Equal(t, 2, productRepo.products[p.ID].Quantity)

	require.Len(t, stockRepo.entries, 1)
	assert.Equal(t, entity.ChangeTypeOut, stockRepo.entries[0].ChangeType)
}

func TestStock_Decrease_StockInsuficiente_NoModificaNada(t *testing.T) {
	p := testProduct(2)
	uc, productRepo, stockRepo := newStockUseCase(t, p)

	_, err := uc.Decrease(context.Background(), dto.AdjustStockRequest{ProductID: p.ID, Quantity: 100})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 2, productRepo.products[p.ID].Quantity, "la cantidad no debe cambiar")
	assert.Empty(t, stockRepo.entries, "no debe registrarse línea en el historial")
}

func TestStock_Ajuste_CantidadNoPositiva_EsInvalida(t *testing.T) {
	p := testProduct(5)
	uc, _, _ := newStockUseCase(t, p)

	for _, q := range []int{0, -3} {
		_, err := uc.Increase(context.Background(), dto.AdjustStockRequest{ProductID: p.ID, Quantity: q})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		_, err = uc.Decrease(context.Background(), dto.AdjustStockRequest{ProductID: p.ID, Quantity: q})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestStock_Ajuste_ProductoInexistente_NotFound(t *testing.T) {
	uc, _, _ := newStockUseCase(t)

	_, err := uc.Increase(context.Background(), dto.AdjustStockRequest{
		ProductID: "99999999-9999-9999-9999-999999999999",
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStock_AjustesEncadenados_HistorialSinHuecos(t *testing.T) {
	p := testProduct(0)
	uc, _, stockRepo := newStockUseCase(t, p)
	ctx := context.Background()

	_, err := uc.Increase(ctx, dto.AdjustStockRequest{ProductID: p.ID, Quantity: 10})
	require.NoError(t, err)
	_, err = uc.Decrease(ctx, dto.AdjustStockRequest{ProductID: p.ID, Quantity: 4})
	require.NoError(t, err)
	_, err = uc.Increase(ctx, dto.AdjustStockRequest{ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)

	require.Len(t, stockRepo.entries, 3)
	// Cada línea parte de donde terminó la anterior.
	for i := 1; i < len(stockRepo.entries); i++ {
		assert.Equal(t, stockRepo.entries[i-1].NewQuantity, stockRepo.entries[i].PreviousQuantity,
			"previous_quantity debe encadenar con la línea anterior")
	}
	assert.Equal(t, 7, stockRepo.entries[2].NewQuantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// History / LowStock
// ──────────────────────────────────────────────────────────────────────────────

func TestStock_History_PaginaPorDefecto(t *testing.T) {
	p := testProduct(0)
	uc, _, _ := newStockUseCase(t, p)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := uc.Increase(ctx, dto.AdjustStockRequest{ProductID: p.ID, Quantity: 1})
		require.NoError(t, err)
	}

	out, err := uc.History(ctx, nil, dto.PageRequest{})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 25, out.Limit, "el historial pagina de a 25 por defecto")
	assert.Len(t, out.History, 3)
	// Más reciente primero.
	assert.Equal(t, 3, out.History[0].NewQuantity)
}

func TestStock_History_FiltraPorProducto(t *testing.T) {
	p := testProduct(0)
	other := &entity.Product{ID: "22222222-2222-2222-2222-222222222222", Name: "Borrador", Quantity: 0}
	uc, _, _ := newStockUseCase(t, p, other)
	ctx := context.Background()

	_, err := uc.Increase(ctx, dto.AdjustStockRequest{ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = uc.Increase(ctx, dto.AdjustStockRequest{ProductID: other.ID, Quantity: 1})
	require.NoError(t, err)

	out, err := uc.History(ctx, &p.ID, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.History, 1)
	assert.Equal(t, p.ID, out.History[0].ProductID)
}

func TestStock_LowStock_UmbralConfigurado(t *testing.T) {
	low := testProduct(3)
	high := &entity.Product{ID: "22222222-2222-2222-2222-222222222222", Name: "Borrador", Quantity: 50}
	uc, _, _ := newStockUseCase(t, low, high)

	out, err := uc.LowStock(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 10, out.Threshold)
	assert.Equal(t, 1, out.Count)
	require.Len(t, out.Products, 1)
	assert.Equal(t, low.ID, out.Products[0].ID)
}

func TestStock_LowStock_UmbralOverride(t *testing.T) {
	low := testProduct(3)
	uc, _, _ := newStockUseCase(t, low)

	threshold := 2
	out, err := uc.LowStock(context.Background(), &threshold)
	require.NoError(t, err)

	assert.Equal(t, 2, out.Threshold)
	assert.Equal(t, 0, out.Count)
	assert.Empty(t, out.Products)
}

func TestStock_LowStock_UmbralNegativo_EsInvalido(t *testing.T) {
	uc, _, _ := newStockUseCase(t)

	threshold := -1
	_, err := uc.LowStock(context.Background(), &threshold)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
