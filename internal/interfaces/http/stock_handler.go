package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/papeleria-app/papeleria-api/internal/application/dto"
	"github.com/papeleria-app/papeleria-api/internal/application/inventory"
)

// StockHandler maneja los ajustes de inventario y sus consultas.
type StockHandler struct {
	uc *inventory.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Increase godoc
// @Summary      Registrar entrada de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "Ajuste"
// @Success      200   {object}  dto.AdjustStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/increase [post]
func (h *StockHandler) Increase(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Increase(c.Context(), in)
	if err != nil {
		return respondError(c, err, "producto no encontrado")
	}
	return c.JSON(out)
}

// Decrease godoc
// @Summary      Registrar salida de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "Ajuste"
// @Success      200   {object}  dto.AdjustStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/decrease [post]
func (h *StockHandler) Decrease(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Decrease(c.Context(), in)
	if err != nil {
		return respondError(c, err, "producto no encontrado")
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de movimientos de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtro por producto"
// @Param        page        query  int     false  "Página (1-based)"  default(1)
// @Param        limit       query  int     false  "Tamaño de página"  default(25)
// @Success      200  {object}  dto.StockHistoryResponse
// @Router       /api/stock/history [get]
func (h *StockHandler) History(c *fiber.Ctx) error {
	var productID *string
	if v := c.Query("product_id"); v != "" {
		productID = &v
	}
	page := dto.PageRequest{
		Page:  c.QueryInt("page"),
		Limit: c.QueryInt("limit"),
	}
	out, err := h.uc.History(c.Context(), productID, page)
	if err != nil {
		return respondError(c, err, "producto no encontrado")
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos en o bajo el umbral de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  int  false  "Umbral (por defecto el configurado)"
// @Success      200  {object}  dto.LowStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/low [get]
func (h *StockHandler) LowStock(c *fiber.Ctx) error {
	var threshold *int
	if v := c.Query("threshold"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "threshold debe ser un entero"})
		}
		threshold = &n
	}
	out, err := h.uc.LowStock(c.Context(), threshold)
	if err != nil {
		return respondError(c, err, "producto no encontrado")
	}
	return c.JSON(out)
}
