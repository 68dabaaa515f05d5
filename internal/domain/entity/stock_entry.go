package entity

import "time"

// Tipos de movimiento del libro de stock.
const (
	ChangeTypeIn  = "IN"
	ChangeTypeOut = "OUT"
)

// StockEntry es una línea inmutable del historial de stock (append-only).
// Invariante: NewQuantity = PreviousQuantity + QuantityChange para IN,
// NewQuantity = PreviousQuantity - QuantityChange para OUT.
type StockEntry struct {
	ID               string
	ProductID        string
	ChangeType       string // IN | OUT
	QuantityChange   int    // siempre positivo
	PreviousQuantity int
	NewQuantity      int
	Notes            *string
	CreatedAt        time.Time
}
