package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/internal/application/sales"
)

// SalesHandler maneja las peticiones HTTP del flujo de ventas (protegido).
type SalesHandler struct {
	checkout  *sales.CheckoutUseCase
	query     *sales.SaleQueryUseCase
	returnUC  *sales.ReturnSaleUseCase
	receiptUC *sales.ReceiptPDFUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(
	checkout *sales.CheckoutUseCase,
	query *sales.SaleQueryUseCase,
	returnUC *sales.ReturnSaleUseCase,
	receiptUC *sales.ReceiptPDFUseCase,
) *SalesHandler {
	return &SalesHandler{checkout: checkout, query: query, returnUC: returnUC, receiptUC: receiptUC}
}

// Checkout godoc
// @Summary      Registrar venta de mostrador
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "branch_id, items, totales"
// @Success      201   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/checkout [post]
func (h *SalesHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.checkout.Checkout(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta con sus líneas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.query.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Return godoc
// @Summary      Devolver una venta completa
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/return [post]
func (h *SalesHandler) Return(c *fiber.Ctx) error {
	out, err := h.returnUC.Return(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReceiptPDF godoc
// @Summary      Recibo de la venta en PDF
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SalesHandler) ReceiptPDF(c *fiber.Ctx) error {
	data, err := h.receiptUC.Generate(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo.pdf"`)
	return c.Send(data)
}
