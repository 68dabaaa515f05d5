package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats conteos agregados para el resumen del dashboard.
type DashboardStats struct {
	TotalProducts   int
	TotalCategories int
	TotalSuppliers  int
	TotalStock      int
	LowStockCount   int
}

// RecentProductResult producto reciente con nombre de categoría denormalizado.
type RecentProductResult struct {
	ID           string
	Name         string
	Price        decimal.Decimal
	Quantity     int
	CategoryName *string
	CreatedAt    time.Time
}

// CategoryStockResult totales de stock por categoría; los productos sin
// categoría se agrupan bajo "Uncategorized".
type CategoryStockResult struct {
	Category     string
	ProductCount int
	TotalStock   int
}

// DashboardRepository define las consultas de solo lectura del dashboard.
// Las implementaciones no modifican datos.
type DashboardRepository interface {
	GetStats(ctx context.Context, lowStockThreshold int) (*DashboardStats, error)
	GetRecentProducts(ctx context.Context, limit int) ([]RecentProductResult, error)
	GetStockOverview(ctx context.Context) ([]CategoryStockResult, error)
}
