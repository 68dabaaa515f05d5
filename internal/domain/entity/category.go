package entity

import "time"

// Category representa una categoría de productos.
// Al eliminarla, los productos que la referencian quedan con category_id NULL
// (ON DELETE SET NULL a nivel de base de datos, no de aplicación).
type Category struct {
	ID          string
	Name        string // único
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
