package repository

import (
	"context"

	"github.com/papeleria-app/papeleria-api/internal/domain/entity"
)

// CategoryRecord fila de categoría con el conteo de productos asociados.
// Lo produce la DB (LEFT JOIN + COUNT); el use case lo convierte en DTO.
type CategoryRecord struct {
	entity.Category
	ProductCount int
}

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	// List devuelve todas las categorías con product_count, ordenadas por nombre.
	List(ctx context.Context) ([]CategoryRecord, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	// Delete elimina y devuelve el resumen mínimo (id, nombre); nil si no existe.
	Delete(ctx context.Context, id string) (*entity.Category, error)
}
