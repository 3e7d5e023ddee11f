package consumption

import (
	"context"

	"github.com/jhoicas/catering-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el commit y la reversa del libro de movimientos:
// N inserts de movimientos + N updates de stock + 1 registro de grupo, o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		bulkRepo repository.BulkMovementRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
