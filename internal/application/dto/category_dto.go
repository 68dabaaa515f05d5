package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
// Campos ausentes preservan el valor almacenado.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
}

// CategoryResponse salida de una categoría. ProductCount solo se llena en listados.
type CategoryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	ProductCount *int      `json:"product_count,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CategoryListResponse listado completo de categorías.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CategoryItemResponse una categoría, con mensaje en mutaciones.
type CategoryItemResponse struct {
	Message  string           `json:"message,omitempty"`
	Category CategoryResponse `json:"category"`
}

// DeletedSummary resumen mínimo del recurso eliminado.
type DeletedSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DeletedResponse salida de DELETE.
type DeletedResponse struct {
	Message string         `json:"message"`
	Deleted DeletedSummary `json:"deleted"`
}
