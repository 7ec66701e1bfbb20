package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/despensa-api/internal/application/dto"
	"github.com/tu-usuario/despensa-api/internal/application/inventory"
	"github.com/tu-usuario/despensa-api/internal/application/usecase"
	"github.com/tu-usuario/despensa-api/internal/domain"
)

// InventoryHandler maneja las peticiones que escriben en el ledger y su
// lectura de auditoría. Los mensajes de error van en inglés: son parte del
// contrato que consume la UI de escaneo.
type InventoryHandler struct {
	scan   *inventory.ScanUseCase
	ledger *usecase.LedgerUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(scan *inventory.ScanUseCase, ledger *usecase.LedgerUseCase) *InventoryHandler {
	return &InventoryHandler{scan: scan, ledger: ledger}
}

// Add godoc
// @Summary      Registrar entrada de stock (crea el artículo si no existe)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddStockRequest  true  "barcode opcional; quantity por defecto 1"
// @Success      200   {object}  dto.StockChangeResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/inventory/add [post]
func (h *InventoryHandler) Add(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	out, err := h.scan.AddStock(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Perdió la carrera de creación y la relectura tampoco la vio:
			// conflicto reintentable, no fatal.
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "barcode already registered, retry"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Consume godoc
// @Summary      Registrar salida de stock por código de barras
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConsumeRequest  true  "quantity por defecto 1"
// @Success      200   {object}  dto.StockChangeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/consume [post]
func (h *InventoryHandler) Consume(c *fiber.Ctx) error {
	var in dto.ConsumeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	out, err := h.scan.Consume(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Item not found for barcode"})
		}
		if errors.Is(err, domain.ErrInsufficientQuantity) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Insufficient quantity"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Registrar ajuste manual (delta con signo)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustRequest  true  "id y delta requeridos"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if in.ID == "" || in.Delta == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Missing id or delta"})
	}
	if err := h.scan.Adjust(c.Context(), in.ID, *in.Delta, in.Note); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Missing id or delta"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Transactions godoc
// @Summary      Transacciones recientes (más nueva primero)
// @Tags         inventory
// @Produce      json
// @Param        limit  query  int  false  "por defecto 50, acotado a 1..100"
// @Success      200    {object}  dto.ListTransactionsResponse
// @Router       /api/inventory/transactions [get]
func (h *InventoryHandler) Transactions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", usecase.DefaultRecentLimit)
	out, err := h.ledger.Recent(c.Context(), limit)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
