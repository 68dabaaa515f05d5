package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Price es puntero para distinguir "ausente" (error de validación) de 0.
type CreateProductRequest struct {
	Name       string           `json:"name" validate:"required,min=1,max=200"`
	CategoryID *string          `json:"category_id" validate:"omitempty,uuid"`
	Price      *decimal.Decimal `json:"price"`
	Quantity   int              `json:"quantity" validate:"min=0"`
	SupplierID *string          `json:"supplier_id" validate:"omitempty,uuid"`
	ImageURL   *string          `json:"image_url"`
}

// UpdateProductRequest entrada para actualizar un producto.
// Escalares ausentes preservan el valor almacenado; los FK (OptionalID)
// sobreescriben siempre que estén presentes en el payload, incluso con null.
type UpdateProductRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=200"`
	CategoryID OptionalID       `json:"category_id"`
	Price      *decimal.Decimal `json:"price"`
	Quantity   *int             `json:"quantity" validate:"omitempty,min=0"`
	SupplierID OptionalID       `json:"supplier_id"`
	ImageURL   *string          `json:"image_url"`
}

// ProductResponse salida de un producto con nombres denormalizados.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CategoryID   *string         `json:"category_id"`
	CategoryName *string         `json:"category_name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	SupplierID   *string         `json:"supplier_id"`
	SupplierName *string         `json:"supplier_name"`
	ImageURL     *string         `json:"image_url"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListRequest filtros del listado de productos.
type ProductListRequest struct {
	Search     string  `query:"search"`
	CategoryID *string `query:"category_id"`
	PageRequest
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	Pagination PageResponse      `json:"pagination"`
}

// ProductItemResponse un producto, con mensaje en mutaciones.
type ProductItemResponse struct {
	Message string          `json:"message,omitempty"`
	Product ProductResponse `json:"product"`
}
