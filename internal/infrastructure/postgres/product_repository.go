package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/papeleria-app/papeleria-api/internal/domain/entity"
	"github.com/papeleria-app/papeleria-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productRecordColumns = `
	p.id, p.name, p.category_id, p.price, p.quantity, p.supplier_id, p.image_url,
	p.created_at, p.updated_at, c.name AS category_name, s.name AS supplier_name`

func scanProductRecord(row pgx.Row, rec *repository.ProductRecord) error {
	return row.Scan(
		&rec.ID, &rec.Name, &rec.CategoryID, &rec.Price, &rec.Quantity,
		&rec.SupplierID, &rec.ImageURL, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.CategoryName, &rec.SupplierName,
	)
}

// List devuelve la página filtrada (ILIKE sobre nombre, categoría exacta) ordenada
// por created_at DESC, más el total de filas del mismo filtro sin paginación.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]repository.ProductRecord, int, error) {
	query := `
		SELECT ` + productRecordColumns + `
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		LEFT JOIN suppliers s ON p.supplier_id = s.id
		WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM products p WHERE 1=1`

	var args []any
	var countArgs []any
	idx := 1
	if filter.Search != "" {
		cond := fmt.Sprintf(" AND p.name ILIKE $%d", idx)
		query += cond
		countQuery += cond
		args = append(args, "%"+filter.Search+"%")
		countArgs = append(countArgs, "%"+filter.Search+"%")
		idx++
	}
	if filter.CategoryID != nil {
		cond := fmt.Sprintf(" AND p.category_id = $%d", idx)
		query += cond
		countQuery += cond
		args = append(args, *filter.CategoryID)
		countArgs = append(countArgs, *filter.CategoryID)
		idx++
	}

	query += fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []repository.ProductRecord
	for rows.Next() {
		var rec repository.ProductRecord
		if err := scanProductRecord(rows, &rec); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	return list, total, nil
}

// GetByID obtiene un producto con nombres de categoría y proveedor denormalizados.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*repository.ProductRecord, error) {
	query := `
		SELECT ` + productRecordColumns + `
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		LEFT JOIN suppliers s ON p.supplier_id = s.id
		WHERE p.id = $1`
	var rec repository.ProductRecord
	if err := scanProductRecord(r.q.QueryRow(ctx, query, id), &rec); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &rec, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, category_id, price, quantity, supplier_id, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.CategoryID, product.Price, product.Quantity,
		product.SupplierID, product.ImageURL, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update escribe la fila completa (el merge parcial se resuelve en el use case)
// y refresca updated_at.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, category_id = $3, price = $4, quantity = $5, supplier_id = $6, image_url = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.CategoryID, product.Price, product.Quantity,
		product.SupplierID, product.ImageURL, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina y devuelve el resumen mínimo (id, nombre); nil si no existe.
func (r *ProductRepo) Delete(ctx context.Context, id string) (*entity.Product, error) {
	query := `DELETE FROM products WHERE id = $1 RETURNING id, name`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete product: %w", err)
	}
	return &p, nil
}

// ListBySupplier lista los productos de un proveedor ordenados por nombre.
func (r *ProductRepo) ListBySupplier(ctx context.Context, supplierID string) ([]entity.Product, error) {
	query := `
		SELECT id, name, category_id, price, quantity, supplier_id, image_url, created_at, updated_at
		FROM products WHERE supplier_id = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list products by supplier: %w", err)
	}
	defer rows.Close()

	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.CategoryID, &p.Price, &p.Quantity,
			&p.SupplierID, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListLowStock lista productos con quantity <= threshold, ascendente por quantity.
func (r *ProductRepo) ListLowStock(ctx context.Context, threshold int) ([]repository.ProductRecord, error) {
	query := `
		SELECT ` + productRecordColumns + `
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		LEFT JOIN suppliers s ON p.supplier_id = s.id
		WHERE p.quantity <= $1
		ORDER BY p.quantity ASC`
	rows, err := r.q.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	var list []repository.ProductRecord
	for rows.Next() {
		var rec repository.ProductRecord
		if err := scanProductRecord(rows, &rec); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// GetForUpdate lee el producto bloqueando la fila (SELECT FOR UPDATE) para
// serializar ajustes de stock concurrentes. Usar dentro de una transacción.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, name, category_id, price, quantity, supplier_id, image_url, created_at, updated_at
		FROM products WHERE id = $1
		FOR UPDATE`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.CategoryID, &p.Price, &p.Quantity,
		&p.SupplierID, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return &p, nil
}

// UpdateQuantity fija la cantidad en stock y refresca updated_at.
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}
