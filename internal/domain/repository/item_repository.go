package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/despensa-api/internal/domain/entity"
)

// ItemListing resultado crudo del listado: artículo + nombres de clasificación
// + cantidad derivada (suma de deltas en una sola lectura del ledger).
// Lo produce la DB; el use case lo convierte en DTO.
type ItemListing struct {
	ID              string
	Name            string
	Barcode         *string
	Unit            string
	QuantityPerUnit decimal.Decimal
	Notes           string
	Active          bool
	TypeName        *string
	LocationName    *string
	CurrentQty      decimal.Decimal
}

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	// GetByBarcode busca por código exacto (ya recortado). nil,nil si no existe.
	GetByBarcode(barcode string) (*entity.Item, error)
	// GetForUpdate bloquea la fila del artículo (SELECT FOR UPDATE) para
	// serializar escrituras concurrentes sobre su ledger. Solo tiene sentido
	// dentro de una transacción.
	GetForUpdate(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	// Delete borra el artículo y arrastra su historial (acción administrativa).
	Delete(id string) error
	// ListWithTotals devuelve todos los artículos ordenados por nombre asc,
	// con nombres de tipo/ubicación y cantidad derivada por artículo.
	ListWithTotals() ([]ItemListing, error)
	// GetListingByBarcode variante de ListWithTotals para un solo código.
	GetListingByBarcode(barcode string) (*ItemListing, error)
}
