package entity

import "time"

// Supplier representa un proveedor. Mismo comportamiento de borrado que
// Category: los productos referenciados quedan con supplier_id NULL.
type Supplier struct {
	ID        string
	Name      string
	Phone     *string
	Email     *string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
