package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP de stock y movimientos (protegido).
type InventoryHandler struct {
	query    *inventory.StockQueryUseCase
	adjust   *inventory.AdjustStockUseCase
	transfer *inventory.TransferUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	query *inventory.StockQueryUseCase,
	adjust *inventory.AdjustStockUseCase,
	transfer *inventory.TransferUseCase,
) *InventoryHandler {
	return &InventoryHandler{query: query, adjust: adjust, transfer: transfer}
}

// GetStock godoc
// @Summary      Stock de un par (producto, sucursal)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  path  string  true  "ID del producto"
// @Param        branch_id   path  string  true  "ID de la sucursal"
// @Success      200  {object}  dto.StockRecordResponse
// @Router       /api/inventory/stock/{product_id}/{branch_id} [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	out, err := h.query.GetStock(c.Params("product_id"), c.Params("branch_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListStock godoc
// @Summary      Listar stock por sucursal o por producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        branch_id   query  string  false  "Filtrar por sucursal"
// @Success      200  {array}  dto.StockRecordResponse
// @Router       /api/inventory/stock [get]
func (h *InventoryHandler) ListStock(c *fiber.Ctx) error {
	out, err := h.query.ListStock(c.Query("product_id"), c.Query("branch_id"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ProductStock godoc
// @Summary      Stock de un producto en todas las sucursales
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {array}  dto.StockRecordResponse
// @Router       /api/products/{id}/stock [get]
func (h *InventoryHandler) ProductStock(c *fiber.Ctx) error {
	out, err := h.query.ListStock(c.Params("id"), "", pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Ajuste manual contra conteo físico
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, branch_id, physical_quantity"
// @Success      200   {object}  dto.AdjustStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.adjust.Adjust(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Transfer godoc
// @Summary      Traslado de stock entre sucursales
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "from_branch_id, to_branch_id, items"
// @Success      200   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfer [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.transfer.Transfer(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Pares en o bajo su nivel de reorden
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        branch_id  query  string  false  "Filtrar por sucursal"
// @Success      200  {array}  repository.LowStockItem
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.query.ListLowStock(c.Query("branch_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateReorderLevel godoc
// @Summary      Editar el umbral de reorden de un par
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.ReorderLevelRequest  true  "product_id, branch_id, reorder_level"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/reorder-level [put]
func (h *InventoryHandler) UpdateReorderLevel(c *fiber.Ctx) error {
	var in dto.ReorderLevelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.query.UpdateReorderLevel(in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Movements godoc
// @Summary      Historial de movimientos (por producto, sucursal o par)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "ID del producto"
// @Param        branch_id   query  string  false  "ID de la sucursal"
// @Param        from        query  string  false  "Fecha inicial (RFC3339 o YYYY-MM-DD)"
// @Param        to          query  string  false  "Fecha final"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	var q dto.MovementQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	out, err := h.query.ListMovements(q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar el stock de una sucursal como CSV
// @Tags         inventory
// @Security     Bearer
// @Produce      text/csv
// @Param        branch_id  query  string  true  "ID de la sucursal"
// @Success      200  {string}  string
// @Router       /api/inventory/export [get]
func (h *InventoryHandler) ExportCSV(c *fiber.Ctx) error {
	data, err := h.query.ExportCSV(c.Query("branch_id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock.csv"`)
	return c.Send(data)
}
