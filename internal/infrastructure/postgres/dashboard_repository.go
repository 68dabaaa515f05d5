package postgres

import (
	"context"
	"fmt"

	"github.com/papeleria-app/papeleria-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas de solo lectura para el dashboard.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del dashboard.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// GetStats devuelve los conteos del resumen. Una consulta con subselects:
// todas las cifras salen de la misma foto de la base.
func (r *DashboardRepo) GetStats(ctx context.Context, lowStockThreshold int) (*repository.DashboardStats, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*)::int FROM products)                                  AS total_products,
	    (SELECT COUNT(*)::int FROM categories)                                AS total_categories,
	    (SELECT COUNT(*)::int FROM suppliers)                                 AS total_suppliers,
	    (SELECT COALESCE(SUM(quantity), 0)::int FROM products)                AS total_stock,
	    (SELECT COUNT(*)::int FROM products WHERE quantity <= $1)             AS low_stock_count`

	var s repository.DashboardStats
	err := r.q.QueryRow(ctx, query, lowStockThreshold).Scan(
		&s.TotalProducts, &s.TotalCategories, &s.TotalSuppliers, &s.TotalStock, &s.LowStockCount,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetStats: %w", err)
	}
	return &s, nil
}

// GetRecentProducts devuelve los productos creados más recientemente con su categoría.
func (r *DashboardRepo) GetRecentProducts(ctx context.Context, limit int) ([]repository.RecentProductResult, error) {
	const query = `
	SELECT p.id, p.name, p.price, p.quantity, c.name AS category_name, p.created_at
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id
	ORDER BY p.created_at DESC
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetRecentProducts: %w", err)
	}
	defer rows.Close()

	var list []repository.RecentProductResult
	for rows.Next() {
		var rec repository.RecentProductResult
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Price, &rec.Quantity, &rec.CategoryName, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("dashboard.GetRecentProducts scan: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// GetStockOverview agrupa conteo y stock total por categoría, descendente por stock.
// Los productos sin categoría se consolidan en el grupo "Uncategorized".
func (r *DashboardRepo) GetStockOverview(ctx context.Context) ([]repository.CategoryStockResult, error) {
	const query = `
	SELECT
	    COALESCE(c.name, 'Uncategorized')        AS category,
	    COUNT(p.id)::int                         AS product_count,
	    COALESCE(SUM(p.quantity), 0)::int        AS total_stock
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id
	GROUP BY c.name
	ORDER BY total_stock DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetStockOverview: %w", err)
	}
	defer rows.Close()

	var list []repository.CategoryStockResult
	for rows.Next() {
		var rec repository.CategoryStockResult
		if err := rows.Scan(&rec.Category, &rec.ProductCount, &rec.TotalStock); err != nil {
			return nil, fmt.Errorf("dashboard.GetStockOverview scan: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
