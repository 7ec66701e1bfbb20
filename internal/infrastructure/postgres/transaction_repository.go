package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/despensa-api/internal/domain/entity"
	"github.com/tu-usuario/despensa-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del ledger sobre PostgreSQL (usable con pool
// o tx). Solo inserta y lee: el ledger es append-only.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create anexa una transacción al ledger.
func (r *TransactionRepo) Create(t *entity.Transaction) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transactions (id, item_id, kind, quantity, delta, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.ItemID, t.Kind, t.Quantity, t.Delta, t.Note, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListByItem historial completo de un artículo, creación asc.
func (r *TransactionRepo) ListByItem(itemID string) ([]*entity.Transaction, error) {
	query := `
		SELECT id, item_id, kind, quantity, delta, note, created_at
		FROM transactions WHERE item_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.ItemID, &t.Kind, &t.Quantity, &t.Delta, &t.Note, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// ListRecent las N transacciones más recientes (más nueva primero), con
// nombre/código/ubicación del artículo para presentación.
func (r *TransactionRepo) ListRecent(limit int) ([]repository.LedgerEntry, error) {
	query := `
		SELECT tx.id, tx.kind, tx.quantity, tx.delta, tx.note, tx.created_at,
		       i.name AS item_name, i.barcode, l.name AS location_name
		FROM transactions tx
		LEFT JOIN items i ON i.id = tx.item_id
		LEFT JOIN locations l ON l.id = i.location_id
		ORDER BY tx.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent transactions: %w", err)
	}
	defer rows.Close()

	var list []repository.LedgerEntry
	for rows.Next() {
		var e repository.LedgerEntry
		if err := rows.Scan(&e.ID, &e.Kind, &e.Quantity, &e.Delta, &e.Note, &e.CreatedAt,
			&e.ItemName, &e.Barcode, &e.LocationName); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
