package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/despensa-api/internal/application/dto"
	"github.com/tu-usuario/despensa-api/internal/application/usecase"
	"github.com/tu-usuario/despensa-api/internal/domain"
)

// ItemHandler consultas y edición administrativa de artículos.
type ItemHandler struct {
	items *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(items *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{items: items}
}

// Find godoc
// @Summary      Buscar artículo por código de barras
// @Tags         items
// @Produce      json
// @Param        barcode  query  string  true  "código exacto (se recorta)"
// @Success      200  {object}  dto.FindResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/find [get]
func (h *ItemHandler) Find(c *fiber.Ctx) error {
	barcode := c.Query("barcode")
	if barcode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "barcode required"})
	}
	// Código desconocido no es error: found=false.
	out, err := h.items.FindByBarcode(c.Context(), barcode)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar todos los artículos con cantidad derivada
// @Tags         items
// @Produce      json
// @Success      200  {object}  dto.ListItemsResponse
// @Router       /api/inventory/list [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	out, err := h.items.List(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Edición parcial de un artículo
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateItemRequest  true  "id requerido; campos ausentes se conservan"
// @Success      200   {object}  dto.UpdateItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/update [post]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	out, err := h.items.Update(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Missing id"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Item not found"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrado administrativo de un artículo y su historial
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteItemRequest  true  "id requerido"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/delete [post]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if err := h.items.Delete(c.Context(), in.ID); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Missing id"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Item not found"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
