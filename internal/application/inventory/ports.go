package inventory

import (
	"context"

	"github.com/tu-usuario/despensa-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la secuencia
// bloquear-derivar-anexar del consumo sea atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		txnRepo repository.TransactionRepository,
	) error) error
}
