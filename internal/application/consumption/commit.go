package consumption

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catering-api/internal/domain"
	"github.com/jhoicas/catering-api/internal/domain/entity"
	"github.com/jhoicas/catering-api/internal/domain/repository"
)

// CommitInput entrada para confirmar un consumo ya calculado.
// BulkID es opcional: si viene vacío se genera un UUID nuevo. Si el caller lo
// fija, actúa como llave de idempotencia: un segundo commit con el mismo ID
// falla con domain.ErrDuplicate sin aplicar nada.
type CommitInput struct {
	BulkID     string
	MenuLabel  string
	GuestCount int
	Items      []entity.ConsumptionItem
}

// CommitConsumptionUseCase registra en el libro un consumo aprobado: un
// BulkMovement + un StockMovement de salida por producto + el descuento de
// stock, todo dentro de una sola transacción (Commit o Rollback completos).
type CommitConsumptionUseCase struct {
	txRunner TxRunner
}

// NewCommitConsumptionUseCase construye el caso de uso.
func NewCommitConsumptionUseCase(txRunner TxRunner) *CommitConsumptionUseCase {
	return &CommitConsumptionUseCase{txRunner: txRunner}
}

// Commit valida suficiencia ANTES de escribir: si algún ítem no alcanza, no se
// emite ninguna escritura y se devuelve *domain.InsufficientStockError con los
// productos ofensores. Dentro de la transacción cada fila de producto se
// bloquea (SELECT FOR UPDATE) y se re-verifica contra el stock vigente; si
// cambió por debajo de lo necesario, falla con domain.ErrConcurrentModification
// y la transacción completa se revierte.
//
// Devuelve el ID del grupo creado, para auditoría y reversa.
func (uc *CommitConsumptionUseCase) Commit(ctx context.Context, projectID, userID string, in CommitInput) (string, error) {
	if len(in.Items) == 0 || in.GuestCount <= 0 {
		return "", domain.ErrInvalidInput
	}

	var insufficient []domain.InsufficientProduct
	totalCost := decimal.Zero
	for _, item := range in.Items {
		if item.TotalNeeded.IsNegative() {
			return "", domain.ErrInvalidInput
		}
		if !item.Sufficient {
			insufficient = append(insufficient, domain.InsufficientProduct{
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
			})
		}
		totalCost = totalCost.Add(item.Cost)
	}
	if len(insufficient) > 0 {
		return "", &domain.InsufficientStockError{Products: insufficient}
	}

	bulkID := in.BulkID
	if bulkID == "" {
		bulkID = uuid.New().String()
	}
	now := time.Now()

	err := uc.txRunner.Run(ctx, func(
		bulkRepo repository.BulkMovementRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		bulk := &entity.BulkMovement{
			ID:            bulkID,
			ProjectID:     projectID,
			Date:          now,
			Type:          entity.MovementTypeOut,
			CanBeReversed: true,
			Notes: fmt.Sprintf("Consumo de menú %q para %d invitados. Costo total: %s",
				in.MenuLabel, in.GuestCount, totalCost.StringFixed(2)),
			CreatedAt: now,
			CreatedBy: userID,
		}
		// El ID del grupo es la llave de idempotencia: repetirlo viola la PK.
		if err := bulkRepo.Create(bulk); err != nil {
			return err
		}

		for _, item := range in.Items {
			// Bloquea la fila del producto para serializar commits concurrentes
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.ProjectID != projectID {
				return domain.ErrForbidden
			}
			// Re-verificación contra el stock vigente, no contra el snapshot del cálculo
			if product.StockQuantity.LessThan(item.TotalNeeded) {
				return domain.ErrConcurrentModification
			}
			if err := productRepo.UpdateStock(item.ProductID, product.StockQuantity.Sub(item.TotalNeeded)); err != nil {
				return err
			}

			mov := &entity.StockMovement{
				ID:        uuid.New().String(),
				ProjectID: projectID,
				ProductID: item.ProductID,
				Type:      entity.MovementTypeOut,
				Quantity:  item.TotalNeeded,
				Date:      now,
				IsBulk:    true,
				BulkID:    &bulkID,
				Notes:     in.MenuLabel,
				CreatedAt: now,
				CreatedBy: userID,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return bulkID, nil
}
