package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo rastreado por código de barras.
// La cantidad actual NO se guarda aquí: se deriva sumando los deltas del ledger.
type Item struct {
	ID              string
	Name            string
	Barcode         *string // nil si el artículo se creó sin código; único cuando existe
	Unit            string  // "each", "kg", "box", ...
	QuantityPerUnit decimal.Decimal
	ItemTypeID      *string
	LocationID      *string
	Notes           string
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
