package dto

import "time"

// AdjustStockRequest entrada de POST /api/stock/increase y /api/stock/decrease.
type AdjustStockRequest struct {
	ProductID string  `json:"product_id" validate:"required,uuid"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Notes     *string `json:"notes"`
}

// AdjustStockResponse salida de un ajuste de stock.
type AdjustStockResponse struct {
	Message          string `json:"message"`
	ProductID        string `json:"product_id"`
	PreviousQuantity int    `json:"previous_quantity"`
	NewQuantity      int    `json:"new_quantity"`
}

// StockEntryResponse línea del historial de stock.
type StockEntryResponse struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"product_id"`
	ProductName      string    `json:"product_name"`
	ChangeType       string    `json:"change_type"`
	QuantityChange   int       `json:"quantity_change"`
	PreviousQuantity int       `json:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity"`
	Notes            *string   `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
}

// StockHistoryResponse página del historial (sin total, igual que el listado original).
type StockHistoryResponse struct {
	History []StockEntryResponse `json:"history"`
	Page    int                  `json:"page"`
	Limit   int                  `json:"limit"`
}

// LowStockResponse productos en o bajo el umbral.
type LowStockResponse struct {
	Threshold int               `json:"threshold"`
	Count     int               `json:"count"`
	Products  []ProductResponse `json:"products"`
}
