package analytics

import (
	"context"

	"github.com/papeleria-app/papeleria-api/internal/application/dto"
	"github.com/papeleria-app/papeleria-api/internal/domain/repository"
)

// recentLimit cantidad fija de productos en el widget de recientes.
const recentLimit = 5

// DashboardUseCase agregados de solo lectura para el dashboard.
type DashboardUseCase struct {
	repo              repository.DashboardRepository
	lowStockThreshold int
}

// NewDashboardUseCase construye el caso de uso con el umbral configurado.
func NewDashboardUseCase(repo repository.DashboardRepository, lowStockThreshold int) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, lowStockThreshold: lowStockThreshold}
}

// Stats devuelve los conteos del resumen, incluido el umbral usado para
// contar stock bajo.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	stats, err := uc.repo.GetStats(ctx, uc.lowStockThreshold)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStatsResponse{
		TotalProducts:     stats.TotalProducts,
		TotalCategories:   stats.TotalCategories,
		TotalSuppliers:    stats.TotalSuppliers,
		TotalStock:        stats.TotalStock,
		LowStockCount:     stats.LowStockCount,
		LowStockThreshold: uc.lowStockThreshold,
	}, nil
}

// Recent devuelve los últimos productos creados.
func (uc *DashboardUseCase) Recent(ctx context.Context) (*dto.RecentProductsResponse, error) {
	records, err := uc.repo.GetRecentProducts(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	recent := make([]dto.RecentProductDTO, 0, len(records))
	for _, rec := range records {
		recent = append(recent, dto.RecentProductDTO{
			ID:           rec.ID,
			Name:         rec.Name,
			Price:        rec.Price,
			Quantity:     rec.Quantity,
			CategoryName: rec.CategoryName,
			CreatedAt:    rec.CreatedAt,
		})
	}
	return &dto.RecentProductsResponse{RecentProducts: recent}, nil
}

// StockOverview devuelve los totales de stock agrupados por categoría.
func (uc *DashboardUseCase) StockOverview(ctx context.Context) (*dto.StockOverviewResponse, error) {
	records, err := uc.repo.GetStockOverview(ctx)
	if err != nil {
		return nil, err
	}
	overview := make([]dto.CategoryStockDTO, 0, len(records))
	for _, rec := range records {
		overview = append(overview, dto.CategoryStockDTO{
			Category:     rec.Category,
			ProductCount: rec.ProductCount,
			TotalStock:   rec.TotalStock,
		})
	}
	return &dto.StockOverviewResponse{StockOverview: overview}, nil
}
