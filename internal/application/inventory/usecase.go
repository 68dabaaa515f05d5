package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/papeleria-app/papeleria-api/internal/application/dto"
	"github.com/papeleria-app/papeleria-api/internal/domain"
	"github.com/papeleria-app/papeleria-api/internal/domain/entity"
	"github.com/papeleria-app/papeleria-api/internal/domain/repository"
)

// StockUseCase ajustes auditados de inventario. Cada entrada/salida actualiza
// la cantidad del producto y registra la línea en stock_history dentro de la
// misma transacción, con la fila del producto bloqueada: dos ajustes
// concurrentes se serializan y el historial encadena sin huecos.
type StockUseCase struct {
	tx                TxRunner
	productRepo       repository.ProductRepository
	stockRepo         repository.StockRepository
	lowStockThreshold int
}

// NewStockUseCase construye el caso de uso. productRepo y stockRepo se usan
// para las lecturas fuera de transacción (historial, stock bajo).
func NewStockUseCase(tx TxRunner, productRepo repository.ProductRepository, stockRepo repository.StockRepository, lowStockThreshold int) *StockUseCase {
	return &StockUseCase{
		tx:                tx,
		productRepo:       productRepo,
		stockRepo:         stockRepo,
		lowStockThreshold: lowStockThreshold,
	}
}

// Increase registra una entrada de stock.
func (uc *StockUseCase) Increase(ctx context.Context, in dto.AdjustStockRequest) (*dto.AdjustStockResponse, error) {
	return uc.adjust(ctx, in, entity.ChangeTypeIn)
}

// Decrease registra una salida de stock. ErrInsufficientStock si la cantidad
// pedida supera la disponible; en ese caso no se modifica nada.
func (uc *StockUseCase) Decrease(ctx context.Context, in dto.AdjustStockRequest) (*dto.AdjustStockResponse, error) {
	return uc.adjust(ctx, in, entity.ChangeTypeOut)
}

func (uc *StockUseCase) adjust(ctx context.Context, in dto.AdjustStockRequest, changeType string) (*dto.AdjustStockResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.AdjustStockResponse
	err := uc.tx.Run(ctx, func(productRepo repository.ProductRepository, stockRepo repository.StockRepository) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		previous := product.Quantity
		var next int
		switch changeType {
		case entity.ChangeTypeIn:
			next = previous + in.Quantity
		case entity.ChangeTypeOut:
			if in.Quantity > previous {
				return domain.ErrInsufficientStock
			}
			next = previous - in.Quantity
		}

		if err := productRepo.UpdateQuantity(ctx, product.ID, next); err != nil {
			return err
		}
		entry := &entity.StockEntry{
			ID:               uuid.New().String(),
			ProductID:        product.ID,
			ChangeType:       changeType,
			QuantityChange:   in.Quantity,
			PreviousQuantity: previous,
			NewQuantity:      next,
			Notes:            in.Notes,
			CreatedAt:        time.Now(),
		}
		if err := stockRepo.Create(ctx, entry); err != nil {
			return err
		}

		out = &dto.AdjustStockResponse{
			Message:          adjustMessage(product.Name, changeType, previous, next),
			ProductID:        product.ID,
			PreviousQuantity: previous,
			NewQuantity:      next,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func adjustMessage(name, changeType string, previous, next int) string {
	if changeType == entity.ChangeTypeIn {
		return fmt.Sprintf("Entrada de stock registrada para %s: de %d a %d.", name, previous, next)
	}
	return fmt.Sprintf("Salida de stock registrada para %s: de %d a %d.", name, previous, next)
}

// History devuelve el historial paginado, opcionalmente filtrado por producto.
func (uc *StockUseCase) History(ctx context.Context, productID *string, page dto.PageRequest) (*dto.StockHistoryResponse, error) {
	page.Default(25)
	records, err := uc.stockRepo.List(ctx, productID, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	history := make([]dto.StockEntryResponse, 0, len(records))
	for _, rec := range records {
		history = append(history, dto.StockEntryResponse{
			ID:               rec.ID,
			ProductID:        rec.ProductID,
			ProductName:      rec.ProductName,
			ChangeType:       rec.ChangeType,
			QuantityChange:   rec.QuantityChange,
			PreviousQuantity: rec.PreviousQuantity,
			NewQuantity:      rec.NewQuantity,
			Notes:            rec.Notes,
			CreatedAt:        rec.CreatedAt,
		})
	}
	return &dto.StockHistoryResponse{History: history, Page: page.Page, Limit: page.Limit}, nil
}

// LowStock lista los productos en o bajo el umbral. threshold nil usa el
// umbral configurado; un valor negativo es inválido.
func (uc *StockUseCase) LowStock(ctx context.Context, threshold *int) (*dto.LowStockResponse, error) {
	limit := uc.lowStockThreshold
	if threshold != nil {
		if *threshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		limit = *threshold
	}
	records, err := uc.productRepo.ListLowStock(ctx, limit)
	if err != nil {
		return nil, err
	}
	products := make([]dto.ProductResponse, 0, len(records))
	for _, rec := range records {
		products = append(products, dto.ProductResponse{
			ID:           rec.ID,
			Name:         rec.Name,
			CategoryID:   rec.CategoryID,
			CategoryName: rec.CategoryName,
			Price:        rec.Price,
			Quantity:     rec.Quantity,
			SupplierID:   rec.SupplierID,
			SupplierName: rec.SupplierName,
			ImageURL:     rec.ImageURL,
			CreatedAt:    rec.CreatedAt,
			UpdatedAt:    rec.UpdatedAt,
		})
	}
	return &dto.LowStockResponse{Threshold: limit, Count: len(products), Products: products}, nil
}
