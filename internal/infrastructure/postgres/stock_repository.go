package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/papeleria-app/papeleria-api/internal/domain/entity"
	"github.com/papeleria-app/papeleria-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del libro de stock sobre PostgreSQL (usable con pool o tx).
// La tabla stock_history es append-only: solo INSERT y SELECT.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador del libro de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create persiste una línea del historial.
func (r *StockRepo) Create(ctx context.Context, entry *entity.StockEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_history (id, product_id, change_type, quantity_change, previous_quantity, new_quantity, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.ProductID, entry.ChangeType, entry.QuantityChange,
		entry.PreviousQuantity, entry.NewQuantity, entry.Notes, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock entry: %w", err)
	}
	return nil
}

// List devuelve el historial ordenado por created_at DESC, con el nombre
// del producto, opcionalmente filtrado por producto.
func (r *StockRepo) List(ctx context.Context, productID *string, limit, offset int) ([]repository.StockEntryRecord, error) {
	query := `
		SELECT sh.id, sh.product_id, sh.change_type, sh.quantity_change,
		       sh.previous_quantity, sh.new_quantity, sh.notes, sh.created_at,
		       p.name AS product_name
		FROM stock_history sh
		JOIN products p ON sh.product_id = p.id
		WHERE 1=1`
	var args []any
	idx := 1
	if productID != nil {
		query += fmt.Sprintf(" AND sh.product_id = $%d", idx)
		args = append(args, *productID)
		idx++
	}
	query += fmt.Sprintf(" ORDER BY sh.created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock history: %w", err)
	}
	defer rows.Close()

	var list []repository.StockEntryRecord
	for rows.Next() {
		var rec repository.StockEntryRecord
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.ChangeType, &rec.QuantityChange,
			&rec.PreviousQuantity, &rec.NewQuantity, &rec.Notes, &rec.CreatedAt,
			&rec.ProductName); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
