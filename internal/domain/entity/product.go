package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo de papelería en inventario.
// Los ajustes auditados de Quantity van por el libro de stock (IN/OUT);
// el invariante quantity >= 0 lo garantiza ese flujo, no la base de datos.
type Product struct {
	ID         string
	Name       string
	CategoryID *string // FK nullable
	Price      decimal.Decimal
	Quantity   int
	SupplierID *string // FK nullable
	ImageURL   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
