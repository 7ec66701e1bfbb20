package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/despensa-api/internal/application/inventory"
	"github.com/tu-usuario/despensa-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ScanUC    *inventory.ScanUseCase
	ItemUC    *usecase.ItemUseCase
	LedgerUC  *usecase.LedgerUseCase
	CatalogUC *usecase.CatalogUseCase
}

// Router registra las rutas de la API. Las rutas replican el contrato de la
// UI de escaneo: un endpoint por operación bajo /api/inventory.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/inventory")

	inventoryHandler := NewInventoryHandler(deps.ScanUC, deps.LedgerUC)
	api.Post("/add", inventoryHandler.Add)
	api.Post("/consume", inventoryHandler.Consume)
	api.Post("/adjust", inventoryHandler.Adjust)
	api.Get("/transactions", inventoryHandler.Transactions)

	itemHandler := NewItemHandler(deps.ItemUC)
	api.Get("/find", itemHandler.Find)
	api.Get("/list", itemHandler.List)
	api.Post("/update", itemHandler.Update)
	api.Post("/delete", itemHandler.Delete)

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/types", catalogHandler.ListTypes)
	api.Post("/types", catalogHandler.CreateType)
	api.Get("/locations", catalogHandler.ListLocations)
	api.Post("/locations", catalogHandler.CreateLocation)
}
