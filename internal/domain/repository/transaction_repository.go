package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/despensa-api/internal/domain/entity"
)

// LedgerEntry resultado crudo del listado de transacciones recientes,
// enriquecido con datos del artículo para presentación.
type LedgerEntry struct {
	ID           string
	Kind         string
	Quantity     decimal.Decimal
	Delta        decimal.Decimal
	Note         string
	CreatedAt    time.Time
	ItemName     *string
	Barcode      *string
	LocationName *string
}

// TransactionRepository puerto de persistencia del ledger append-only.
// No existe Update ni Delete: una transacción creada es inmutable.
type TransactionRepository interface {
	Create(t *entity.Transaction) error
	// ListByItem devuelve el historial completo de un artículo, ordenado por
	// fecha de creación asc. La cantidad actual se deriva plegando los deltas.
	ListByItem(itemID string) ([]*entity.Transaction, error)
	// ListRecent devuelve las N transacciones más recientes (más nueva primero).
	ListRecent(limit int) ([]LedgerEntry, error)
}
