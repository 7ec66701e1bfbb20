package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/despensa-api/internal/domain"
	"github.com/tu-usuario/despensa-api/internal/domain/entity"
	"github.com/tu-usuario/despensa-api/internal/domain/ledger"
	"github.com/tu-usuario/despensa-api/internal/domain/repository"
)

// Recorder anexa transacciones al ledger de un artículo y deriva la cantidad
// resultante. Cada in/out/adjust exitoso escribe exactamente una fila
// inmutable; los fallos no anexan nada y no se reintentan.
type Recorder struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
	txnRepo  repository.TransactionRepository
}

// NewRecorder construye el recorder.
func NewRecorder(txRunner TxRunner, itemRepo repository.ItemRepository, txnRepo repository.TransactionRepository) *Recorder {
	return &Recorder{txRunner: txRunner, itemRepo: itemRepo, txnRepo: txnRepo}
}

// RecordIn anexa una entrada (+qty). qty no positiva se normaliza a 1.
// Devuelve la cantidad derivada tras anexar.
func (rec *Recorder) RecordIn(ctx context.Context, itemID string, qty decimal.Decimal, note string) (decimal.Decimal, error) {
	if !qty.GreaterThan(decimal.Zero) {
		qty = decimal.NewFromInt(1)
	}
	delta, err := ledger.DeltaFor(entity.KindIn, qty)
	if err != nil {
		return decimal.Zero, err
	}
	if err := rec.txnRepo.Create(newTransaction(itemID, entity.KindIn, qty, delta, note)); err != nil {
		return decimal.Zero, err
	}
	return rec.Check(ctx, itemID)
}

// RecordOut anexa una salida (-qty) solo si la cantidad derivada no queda
// negativa; en caso contrario falla con ErrInsufficientQuantity sin tocar el
// ledger. Bloquea la fila del artículo dentro de una transacción para que dos
// consumos concurrentes no pasen ambos la verificación.
func (rec *Recorder) RecordOut(ctx context.Context, itemID string, qty decimal.Decimal, note string) (decimal.Decimal, error) {
	if !qty.GreaterThan(decimal.Zero) {
		qty = decimal.NewFromInt(1)
	}
	delta, err := ledger.DeltaFor(entity.KindOut, qty)
	if err != nil {
		return decimal.Zero, err
	}

	var current decimal.Decimal
	err = rec.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, txnRepo repository.TransactionRepository) error {
		item, err := itemRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		history, err := txnRepo.ListByItem(itemID)
		if err != nil {
			return err
		}
		current = ledger.CurrentQuantity(history)
		if current.Sub(qty).IsNegative() {
			return domain.ErrInsufficientQuantity
		}
		if err := txnRepo.Create(newTransaction(itemID, entity.KindOut, qty, delta, note)); err != nil {
			return err
		}
		current = current.Add(delta)
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return current, nil
}

// RecordAdjust anexa un ajuste con delta firmado arbitrario (reconciliación
// de ediciones manuales). La magnitud registrada es |delta|.
func (rec *Recorder) RecordAdjust(ctx context.Context, itemID string, delta decimal.Decimal, note string) error {
	if note == "" {
		note = "Manual adjustment"
	}
	return rec.txnRepo.Create(newTransaction(itemID, entity.KindAdjust, delta.Abs(), delta, note))
}

// Check deriva la cantidad actual sin efectos secundarios: no se anexa
// ninguna transacción de tipo check, solo se pliega el historial.
func (rec *Recorder) Check(ctx context.Context, itemID string) (decimal.Decimal, error) {
	history, err := rec.txnRepo.ListByItem(itemID)
	if err != nil {
		return decimal.Zero, err
	}
	return ledger.CurrentQuantity(history), nil
}

func newTransaction(itemID, kind string, qty, delta decimal.Decimal, note string) *entity.Transaction {
	return &entity.Transaction{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		Kind:      kind,
		Quantity:  qty,
		Delta:     delta,
		Note:      note,
		CreatedAt: time.Now(),
	}
}
