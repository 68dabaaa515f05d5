package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/papeleria-app/papeleria-api/internal/application/dto"
	"github.com/papeleria-app/papeleria-api/internal/domain"
	"github.com/papeleria-app/papeleria-api/internal/domain/entity"
	"github.com/papeleria-app/papeleria-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo        repository.SupplierRepository
	productRepo repository.ProductRepository
}

// NewSupplierUseCase construye el caso de uso. productRepo se usa para el
// detalle (el proveedor se devuelve junto a sus productos).
func NewSupplierUseCase(repo repository.SupplierRepository, productRepo repository.ProductRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, productRepo: productRepo}
}

// List devuelve todos los proveedores con su conteo de productos.
func (uc *SupplierUseCase) List(ctx context.Context) (*dto.SupplierListResponse, error) {
	records, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(records))
	for _, rec := range records {
		resp := toSupplierResponse(&rec.Supplier)
		count := rec.ProductCount
		resp.ProductCount = &count
		out = append(out, resp)
	}
	return &dto.SupplierListResponse{Suppliers: out}, nil
}

// GetByID obtiene un proveedor con sus productos; ErrNotFound si no existe.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierDetailResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	products, err := uc.productRepo.ListBySupplier(ctx, id)
	if err != nil {
		return nil, err
	}
	supplied := make([]dto.SuppliedProduct, 0, len(products))
	for _, p := range products {
		supplied = append(supplied, dto.SuppliedProduct{
			ID: p.ID, Name: p.Name, Price: p.Price, Quantity: p.Quantity,
		})
	}
	return &dto.SupplierDetailResponse{
		Supplier: toSupplierResponse(supplier),
		Products: supplied,
	}, nil
}

// Create crea un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	resp := toSupplierResponse(supplier)
	return &resp, nil
}

// Update aplica solo los campos presentes y refresca updated_at.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.Phone != nil {
		supplier.Phone = in.Phone
	}
	if in.Email != nil {
		supplier.Email = in.Email
	}
	if in.Address != nil {
		supplier.Address = in.Address
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	resp := toSupplierResponse(supplier)
	return &resp, nil
}

// Delete elimina el proveedor; los productos referenciados quedan sin proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) (*dto.DeletedSummary, error) {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.DeletedSummary{ID: deleted.ID, Name: deleted.Name}, nil
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Phone:     s.Phone,
		Email:     s.Email,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
