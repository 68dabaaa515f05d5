package inventory

import (
	"context"

	"github.com/papeleria-app/papeleria-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción: los repos que recibe el
// callback están atados a la misma tx, y cualquier error hace rollback de
// todo (ajuste de cantidad y línea del historial juntos, o ninguno).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error) error
}
