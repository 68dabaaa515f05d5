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

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve todas las categorías con su conteo de productos.
func (uc *CategoryUseCase) List(ctx context.Context) (*dto.CategoryListResponse, error) {
	records, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(records))
	for _, rec := range records {
		resp := toCategoryResponse(&rec.Category)
		count := rec.ProductCount
		resp.ProductCount = &count
		out = append(out, resp)
	}
	return &dto.CategoryListResponse{Categories: out}, nil
}

// GetByID obtiene una categoría; ErrNotFound si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	resp := toCategoryResponse(category)
	return &resp, nil
}

// Create crea una categoría. ErrDuplicate si el nombre ya existe.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	resp := toCategoryResponse(category)
	return &resp, nil
}

// Update aplica solo los campos presentes (los ausentes preservan el valor
// almacenado) y refresca updated_at.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = in.Description
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	resp := toCategoryResponse(category)
	return &resp, nil
}

// Delete elimina la categoría; los productos referenciados quedan sin categoría
// (SET NULL en la base). Devuelve el resumen mínimo del recurso eliminado.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) (*dto.DeletedSummary, error) {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.DeletedSummary{ID: deleted.ID, Name: deleted.Name}, nil
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
