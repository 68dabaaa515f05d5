package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/papeleria-app/papeleria-api/internal/domain/entity"
	"github.com/papeleria-app/papeleria-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// List devuelve todos los proveedores con su conteo de productos, por nombre ascendente.
func (r *SupplierRepo) List(ctx context.Context) ([]repository.SupplierRecord, error) {
	query := `
		SELECT s.id, s.name, s.phone, s.email, s.address, s.created_at, s.updated_at, COUNT(p.id)::int AS product_count
		FROM suppliers s
		LEFT JOIN products p ON p.supplier_id = s.id
		GROUP BY s.id
		ORDER BY s.name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var list []repository.SupplierRecord
	for rows.Next() {
		var rec repository.SupplierRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Phone, &rec.Email, &rec.Address,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.ProductCount); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	query := `
		SELECT id, name, phone, email, address, created_at, updated_at
		FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Phone, &s.Email, &s.Address, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, phone, email, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		supplier.ID, supplier.Name, supplier.Phone, supplier.Email, supplier.Address,
		supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// Update actualiza un proveedor existente y refresca updated_at.
func (r *SupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, phone = $3, email = $4, address = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		supplier.ID, supplier.Name, supplier.Phone, supplier.Email, supplier.Address,
		supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete elimina y devuelve el resumen mínimo (id, nombre). Los productos
// referenciados quedan con supplier_id NULL por el ON DELETE SET NULL del esquema.
func (r *SupplierRepo) Delete(ctx context.Context, id string) (*entity.Supplier, error) {
	query := `DELETE FROM suppliers WHERE id = $1 RETURNING id, name`
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete supplier: %w", err)
	}
	return &s, nil
}
