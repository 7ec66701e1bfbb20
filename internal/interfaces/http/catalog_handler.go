package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/despensa-api/internal/application/dto"
	"github.com/tu-usuario/despensa-api/internal/application/usecase"
	"github.com/tu-usuario/despensa-api/internal/domain"
)

// CatalogHandler listado y alta de tipos y ubicaciones.
type CatalogHandler struct {
	catalog *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(catalog *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListTypes godoc
// @Summary      Listar tipos de artículo
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.ListTypesResponse
// @Router       /api/inventory/types [get]
func (h *CatalogHandler) ListTypes(c *fiber.Ctx) error {
	out, err := h.catalog.ListTypes(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// CreateType godoc
// @Summary      Crear (o resolver) un tipo por nombre
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNamedRequest  true  "name requerido"
// @Success      200   {object}  dto.CreateNamedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/types [post]
func (h *CatalogHandler) CreateType(c *fiber.Ctx) error {
	var in dto.CreateNamedRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	id, err := h.catalog.CreateType(c.Context(), in.Name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Name required"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.CreateNamedResponse{Success: true, ID: id})
}

// ListLocations godoc
// @Summary      Listar ubicaciones
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.ListLocationsResponse
// @Router       /api/inventory/locations [get]
func (h *CatalogHandler) ListLocations(c *fiber.Ctx) error {
	out, err := h.catalog.ListLocations(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// CreateLocation godoc
// @Summary      Crear (o resolver) una ubicación por nombre
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNamedRequest  true  "name requerido"
// @Success      200   {object}  dto.CreateNamedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/locations [post]
func (h *CatalogHandler) CreateLocation(c *fiber.Ctx) error {
	var in dto.CreateNamedRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	id, err := h.catalog.CreateLocation(c.Context(), in.Name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Name required"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.CreateNamedResponse{Success: true, ID: id})
}
