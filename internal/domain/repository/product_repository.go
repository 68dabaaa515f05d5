package repository

import (
	"context"

	"github.com/papeleria-app/papeleria-api/internal/domain/entity"
)

// ProductRecord fila de producto con nombres denormalizados de categoría
// y proveedor (LEFT JOIN en la consulta).
type ProductRecord struct {
	entity.Product
	CategoryName *string
	SupplierName *string
}

// ProductFilter filtros del listado de productos.
// Search es subcadena case-insensitive sobre el nombre (ILIKE);
// CategoryID es coincidencia exacta.
type ProductFilter struct {
	Search     string
	CategoryID *string
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	// List devuelve la página ordenada por created_at DESC y el total de filas
	// que satisfacen el mismo filtro sin paginación.
	List(ctx context.Context, filter ProductFilter) ([]ProductRecord, int, error)
	GetByID(ctx context.Context, id string) (*ProductRecord, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) (*entity.Product, error)
	// ListBySupplier lista los productos de un proveedor ordenados por nombre.
	ListBySupplier(ctx context.Context, supplierID string) ([]entity.Product, error)
	// ListLowStock lista productos con quantity <= threshold, ascendente por quantity.
	ListLowStock(ctx context.Context, threshold int) ([]ProductRecord, error)

	// GetForUpdate lee el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción del TxRunner.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// UpdateQuantity fija la cantidad en stock y refresca updated_at.
	UpdateQuantity(ctx context.Context, id string, quantity int) error
}
