package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStatsResponse respuesta de GET /api/dashboard/stats.
type DashboardStatsResponse struct {
	TotalProducts     int `json:"total_products"`
	TotalCategories   int `json:"total_categories"`
	TotalSuppliers    int `json:"total_suppliers"`
	TotalStock        int `json:"total_stock"`
	LowStockCount     int `json:"low_stock_count"`
	LowStockThreshold int `json:"low_stock_threshold"`
}

// RecentProductDTO producto reciente para el widget del dashboard.
type RecentProductDTO struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	CategoryName *string         `json:"category_name"`
	CreatedAt    time.Time       `json:"created_at"`
}

// RecentProductsResponse respuesta de GET /api/dashboard/recent.
type RecentProductsResponse struct {
	RecentProducts []RecentProductDTO `json:"recent_products"`
}

// CategoryStockDTO totales por categoría para la gráfica del dashboard.
type CategoryStockDTO struct {
	Category     string `json:"category"`
	ProductCount int    `json:"product_count"`
	TotalStock   int    `json:"total_stock"`
}

// StockOverviewResponse respuesta de GET /api/dashboard/stock-overview.
type StockOverviewResponse struct {
	StockOverview []CategoryStockDTO `json:"stock_overview"`
}
