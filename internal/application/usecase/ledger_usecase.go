package usecase

import (
	"context"

	"github.com/tu-usuario/despensa-api/internal/application/dto"
	"github.com/tu-usuario/despensa-api/internal/domain/repository"
)

// Límites del listado de transacciones recientes.
const (
	// DefaultRecentLimit se aplica cuando el cliente no envía limit.
	DefaultRecentLimit = 50

	minRecentLimit = 1
	maxRecentLimit = 100
)

// LedgerUseCase lectura de auditoría del ledger.
type LedgerUseCase struct {
	txnRepo repository.TransactionRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txnRepo repository.TransactionRepository) *LedgerUseCase {
	return &LedgerUseCase{txnRepo: txnRepo}
}

// Recent devuelve las N transacciones más recientes (más nueva primero),
// enriquecidas con nombre/código/ubicación del artículo. limit se acota a
// [1, 100]: un limit=0 explícito se convierte en 1, no en el default (eso lo
// decide el handler cuando el parámetro está ausente).
func (uc *LedgerUseCase) Recent(ctx context.Context, limit int) (*dto.ListTransactionsResponse, error) {
	limit = clampLimit(limit)

	entries, err := uc.txnRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	txns := make([]dto.TransactionPayload, 0, len(entries))
	for _, e := range entries {
		txns = append(txns, dto.TransactionPayload{
			ID:           e.ID,
			Kind:         e.Kind,
			Quantity:     e.Quantity,
			Delta:        e.Delta,
			CreatedAt:    e.CreatedAt,
			ItemName:     e.ItemName,
			Barcode:      e.Barcode,
			LocationName: e.LocationName,
		})
	}
	return &dto.ListTransactionsResponse{Success: true, Transactions: txns}, nil
}

func clampLimit(limit int) int {
	if limit < minRecentLimit {
		return minRecentLimit
	}
	if limit > maxRecentLimit {
		return maxRecentLimit
	}
	return limit
}
