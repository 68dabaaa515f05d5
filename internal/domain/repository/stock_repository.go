package repository

import (
	"context"

	"github.com/papeleria-app/papeleria-api/internal/domain/entity"
)

// StockEntryRecord línea del historial con el nombre del producto (JOIN).
type StockEntryRecord struct {
	entity.StockEntry
	ProductName string
}

// StockRepository define el puerto del libro de stock (append-only:
// las líneas nunca se actualizan ni se borran).
type StockRepository interface {
	Create(ctx context.Context, entry *entity.StockEntry) error
	// List devuelve el historial ordenado por created_at DESC,
	// opcionalmente filtrado por producto.
	List(ctx context.Context, productID *string, limit, offset int) ([]StockEntryRecord, error)
}
