package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del ledger.
const (
	KindIn     = "in"     // entrada: delta = +quantity
	KindOut    = "out"    // salida: delta = -quantity
	KindAdjust = "adjust" // ajuste manual: delta con signo arbitrario
	KindCheck  = "check"  // consulta: no escribe ninguna fila
)

// Transaction una entrada inmutable del ledger de un artículo.
// El ledger es append-only: nunca se actualiza ni se borra una transacción
// desde el flujo de inventario (solo el borrado administrativo del artículo
// arrastra su historial).
type Transaction struct {
	ID        string
	ItemID    string
	Kind      string
	Quantity  decimal.Decimal // magnitud, siempre >= 0
	Delta     decimal.Decimal // cambio con signo según Kind
	Note      string
	CreatedAt time.Time
}
