package repository

import (
	"context"

	"github.com/papeleria-app/papeleria-api/internal/domain/entity"
)

// SupplierRecord fila de proveedor con el conteo de productos asociados.
type SupplierRecord struct {
	entity.Supplier
	ProductCount int
}

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	List(ctx context.Context) ([]SupplierRecord, error)
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Create(ctx context.Context, supplier *entity.Supplier) error
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id string) (*entity.Supplier, error)
}
