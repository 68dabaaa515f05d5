package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=200"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor.
// Campos ausentes preservan el valor almacenado.
type UpdateSupplierRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
}

// SupplierResponse salida de un proveedor. ProductCount solo en listados.
type SupplierResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        *string   `json:"phone"`
	Email        *string   `json:"email"`
	Address      *string   `json:"address"`
	ProductCount *int      `json:"product_count,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SupplierListResponse listado completo de proveedores.
type SupplierListResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

// SupplierItemResponse un proveedor, con mensaje en mutaciones.
type SupplierItemResponse struct {
	Message  string           `json:"message,omitempty"`
	Supplier SupplierResponse `json:"supplier"`
}

// SuppliedProduct producto resumido dentro del detalle de proveedor.
type SuppliedProduct struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// SupplierDetailResponse detalle de proveedor con sus productos.
type SupplierDetailResponse struct {
	Supplier SupplierResponse  `json:"supplier"`
	Products []SuppliedProduct `json:"products"`
}
