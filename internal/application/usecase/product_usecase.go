package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/papeleria-app/papeleria-api/internal/application/dto"
	"github.com/papeleria-app/papeleria-api/internal/domain"
	"github.com/papeleria-app/papeleria-api/internal/domain/entity"
	"github.com/papeleria-app/papeleria-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductUseCase casos de uso CRUD para productos. La cantidad en stock solo
// se modifica aquí en alta/edición directa; los ajustes auditados van por el
// caso de uso de inventario.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista productos con búsqueda por nombre, filtro por categoría y paginación.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ProductListRequest) (*dto.ProductListResponse, error) {
	in.Default(20)
	filter := repository.ProductFilter{
		Search:     in.Search,
		CategoryID: in.CategoryID,
		Limit:      in.Limit,
		Offset:     in.Offset(),
	}
	records, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toProductResponse(&rec))
	}
	return &dto.ProductListResponse{
		Products:   out,
		Pagination: dto.NewPageResponse(in.Page, in.Limit, total),
	}, nil
}

// GetByID obtiene un producto; ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	rec, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(rec)
	return &resp, nil
}

// Create crea un producto. Price es obligatorio y no puede ser negativo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price == nil || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		Name:       in.Name,
		CategoryID: in.CategoryID,
		Price:      *in.Price,
		Quantity:   in.Quantity,
		SupplierID: in.SupplierID,
		ImageURL:   in.ImageURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	// Releer con joins para devolver los nombres denormalizados.
	return uc.GetByID(ctx, product.ID)
}

// Update aplica el merge parcial: los escalares ausentes preservan el valor
// almacenado, los FK presentes en el payload sobreescriben siempre, incluso
// con null. Refresca updated_at.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	rec, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	product := rec.Product
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.ImageURL != nil {
		product.ImageURL = in.ImageURL
	}
	if in.CategoryID.Present {
		product.CategoryID = in.CategoryID.Value
	}
	if in.SupplierID.Present {
		product.SupplierID = in.SupplierID.Value
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, &product); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina el producto y devuelve el resumen mínimo.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (*dto.DeletedSummary, error) {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.DeletedSummary{ID: deleted.ID, Name: deleted.Name}, nil
}

func toProductResponse(rec *repository.ProductRecord) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           rec.ID,
		Name:         rec.Name,
		CategoryID:   rec.CategoryID,
		CategoryName: rec.CategoryName,
		Price:        rec.Price,
		Quantity:     rec.Quantity,
		SupplierID:   rec.SupplierID,
		SupplierName: rec.SupplierName,
		ImageURL:     rec.ImageURL,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}
