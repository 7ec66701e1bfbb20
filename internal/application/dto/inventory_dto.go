package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddStockRequest body para POST /api/inventory/add.
// decimal.Decimal acepta número o string JSON (la UI manda quantity_per_unit
// como string del input).
type AddStockRequest struct {
	Barcode         string          `json:"barcode"`
	TypeName        string          `json:"typeName"`
	Name            string          `json:"name"`
	LocationName    string          `json:"locationName"`
	Notes           string          `json:"notes"`
	Quantity        decimal.Decimal `json:"quantity"`          // <= 0 → 1
	QuantityPerUnit decimal.Decimal `json:"quantity_per_unit"` // <= 0 → 1
	Unit            string          `json:"unit"`              // vacío → "each"
}

// ConsumeRequest body para POST /api/inventory/consume.
type ConsumeRequest struct {
	Barcode  string          `json:"barcode"`
	Quantity decimal.Decimal `json:"quantity"` // <= 0 → 1
	Note     string          `json:"note"`
}

// AdjustRequest body para POST /api/inventory/adjust.
// Delta es puntero para distinguir "no enviado" de 0.
type AdjustRequest struct {
	ID    string           `json:"id"`
	Delta *decimal.Decimal `json:"delta"`
	Note  string           `json:"note"`
}

// StockChangeResponse respuesta de add/consume: artículo afectado y cantidad
// derivada tras la operación.
type StockChangeResponse struct {
	Success    bool            `json:"success"`
	ItemID     string          `json:"itemId"`
	CurrentQty decimal.Decimal `json:"currentQty"`
}

// ItemPayload un artículo con clasificación y cantidad derivada.
type ItemPayload struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Barcode         *string         `json:"barcode"`
	Unit            string          `json:"unit"`
	QuantityPerUnit decimal.Decimal `json:"quantity_per_unit"`
	Active          bool            `json:"active"`
	TypeName        *string         `json:"type_name"`
	LocationName    *string         `json:"location_name"`
	Notes           string          `json:"notes"`
	CurrentQty      decimal.Decimal `json:"current_qty"`
}

// FindResponse respuesta de GET /api/inventory/find. found=false no es error.
type FindResponse struct {
	Success bool         `json:"success"`
	Found   bool         `json:"found"`
	Item    *ItemPayload `json:"item,omitempty"`
}

// ListItemsResponse respuesta de GET /api/inventory/list.
type ListItemsResponse struct {
	Success bool          `json:"success"`
	Items   []ItemPayload `json:"items"`
}

// TransactionPayload una entrada del ledger enriquecida para auditoría.
type TransactionPayload struct {
	ID           string          `json:"id"`
	Kind         string          `json:"kind"`
	Quantity     decimal.Decimal `json:"quantity"`
	Delta        decimal.Decimal `json:"delta"`
	CreatedAt    time.Time       `json:"created_at"`
	ItemName     *string         `json:"item_name"`
	Barcode      *string         `json:"barcode"`
	LocationName *string         `json:"location_name"`
}

// ListTransactionsResponse respuesta de GET /api/inventory/transactions.
type ListTransactionsResponse struct {
	Success      bool                 `json:"success"`
	Transactions []TransactionPayload `json:"transactions"`
}

// UpdateItemRequest body para POST /api/inventory/update. Campos nil se
// conservan; type_name/location_name se resuelven lookup-or-create.
type UpdateItemRequest struct {
	ID              string           `json:"id"`
	Name            *string          `json:"name"`
	Notes           *string          `json:"notes"`
	QuantityPerUnit *decimal.Decimal `json:"quantity_per_unit"`
	Unit            *string          `json:"unit"`
	TypeName        *string          `json:"type_name"`
	LocationName    *string          `json:"location_name"`
}

// ItemRecord la fila del artículo tal como quedó persistida (sin joins).
type ItemRecord struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Barcode         *string         `json:"barcode"`
	Unit            string          `json:"unit"`
	QuantityPerUnit decimal.Decimal `json:"quantity_per_unit"`
	ItemTypeID      *string         `json:"item_type_id"`
	LocationID      *string         `json:"location_id"`
	Notes           string          `json:"notes"`
	Active          bool            `json:"active"`
}

// UpdateItemResponse respuesta de POST /api/inventory/update.
type UpdateItemResponse struct {
	Success bool       `json:"success"`
	Item    ItemRecord `json:"item"`
}

// DeleteItemRequest body para POST /api/inventory/delete.
type DeleteItemRequest struct {
	ID string `json:"id"`
}
