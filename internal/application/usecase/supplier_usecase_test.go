package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papeleria-app/papeleria-api/internal/application/dto"
	"github.com/papeleria-app/papeleria-api/internal/application/usecase"
	"github.com/papeleria-app/papeleria-api/internal/domain"
	"github.com/papeleria-app/papeleria-api/internal/domain/entity"
	"github.com/papeleria-app/papeleria-api/internal/domain/repository"
)

// fakeSupplierRepo repositorio de proveedores en memoria.
type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: make(map[string]*entity.Supplier)}
}

func (f *fakeSupplierRepo) List(ctx context.Context) ([]repository.SupplierRecord, error) {
	var out []repository.SupplierRecord
	for _, s := range f.suppliers {
		out = append(out, repository.SupplierRecord{Supplier: *s})
	}
	return out, nil
}

func (f *fakeSupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	s, ok := f.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	f.suppliers[s.ID] = s
	return nil
}

func (f *fakeSupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	f.suppliers[s.ID] = s
	return nil
}

func (f *fakeSupplierRepo) Delete(ctx context.Context, id string) (*entity.Supplier, error) {
	s, ok := f.suppliers[id]
	if !ok {
		return nil, nil
	}
	delete(f.suppliers, id)
	return s, nil
}

func TestSupplier_GetByID_IncluyeSusProductos(t *testing.T) {
	supplierRepo := newFakeSupplierRepo()
	productRepo := newFakeProductRepo()
	uc := usecase.NewSupplierUseCase(supplierRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateSupplierRequest{Name: "Distribuidora Norte"})
	require.NoError(t, err)

	_, err = productUC.Create(ctx, dto.CreateProductRequest{
		Name:       "Cuaderno",
		Price:      decptr(decimal.NewFromInt(8)),
		Quantity:   3,
		SupplierID: &created.ID,
	})
	require.NoError(t, err)
	// Producto de otro proveedor: no debe aparecer en el detalle.
	_, err = productUC.Create(ctx, dto.CreateProductRequest{
		Name:  "Regla",
		Price: decptr(decimal.NewFromInt(3)),
	})
	require.NoError(t, err)

	out, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, out.Supplier.ID)
	require.Len(t, out.Products, 1)
	assert.Equal(t, "Cuaderno", out.Products[0].Name)
	assert.Equal(t, 3, out.Products[0].Quantity)
}

func TestSupplier_GetByID_Inexistente_NotFound(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newFakeSupplierRepo(), newFakeProductRepo())

	_, err := uc.GetByID(context.Background(), "99999999-9999-9999-9999-999999999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSupplier_Update_CamposAusentesPreservan(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newFakeSupplierRepo(), newFakeProductRepo())
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateSupplierRequest{
		Name:  "Distribuidora Norte",
		Phone: strptr("3001234567"),
	})
	require.NoError(t, err)

	out, err := uc.Update(ctx, created.ID, dto.UpdateSupplierRequest{
		Email: strptr("ventas@norte.test"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Distribuidora Norte", out.Name)
	require.NotNil(t, out.Phone, "phone ausente debe preservarse")
	assert.Equal(t, "3001234567", *out.Phone)
	require.NotNil(t, out.Email)
	assert.Equal(t, "ventas@norte.test", *out.Email)
}

func TestSupplier_Delete_DevuelveResumen(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newFakeSupplierRepo(), newFakeProductRepo())
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateSupplierRequest{Name: "Distribuidora Norte"})
	require.NoError(t, err)

	deleted, err := uc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Distribuidora Norte", deleted.Name)
}
