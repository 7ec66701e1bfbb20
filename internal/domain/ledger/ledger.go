// Package ledger implementa la derivación de cantidades sobre el ledger
// append-only (servicio de dominio puro, sin I/O).
package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/despensa-api/internal/domain"
	"github.com/tu-usuario/despensa-api/internal/domain/entity"
)

// CurrentQuantity deriva la cantidad actual de un artículo como la suma de
// los deltas de su historial. La suma es conmutativa: el orden de las
// transacciones no afecta el resultado, solo la presentación de auditoría.
func CurrentQuantity(transactions []*entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.Delta)
	}
	return total
}

// DeltaFor traduce (kind, magnitud) al delta con signo que registra el ledger.
// Convención: in → +qty, out → -qty, adjust → delta arbitrario (qty ya viene
// con signo), check → 0 (nunca se persiste).
func DeltaFor(kind string, qty decimal.Decimal) (decimal.Decimal, error) {
	switch kind {
	case entity.KindIn:
		if !qty.GreaterThan(decimal.Zero) {
			return decimal.Zero, domain.ErrInvalidInput
		}
		return qty, nil
	case entity.KindOut:
		if !qty.GreaterThan(decimal.Zero) {
			return decimal.Zero, domain.ErrInvalidInput
		}
		return qty.Neg(), nil
	case entity.KindAdjust:
		return qty, nil
	case entity.KindCheck:
		return decimal.Zero, nil
	}
	return decimal.Zero, domain.ErrInvalidInput
}
