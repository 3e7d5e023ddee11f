package consumption

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catering-api/internal/domain"
	"github.com/jhoicas/catering-api/internal/domain/entity"
	"github.com/jhoicas/catering-api/internal/domain/repository"
)

// ReverseBulkMovementUseCase genera los movimientos compensatorios de un grupo
// y apaga su bandera de reversa, todo dentro de una sola transacción.
//
// La reversa es append-only: los movimientos del grupo original no se tocan.
// Se crea un BulkMovement nuevo (tipo inverso, ReversesID apuntando al
// original, CanBeReversed=false para que una reversa no pueda revertirse) y un
// movimiento inverso por cada miembro, aplicado contra el stock VIGENTE de
// cada producto, no contra el snapshot del cálculo original.
type ReverseBulkMovementUseCase struct {
	txRunner TxRunner
}

// NewReverseBulkMovementUseCase construye el caso de uso.
func NewReverseBulkMovementUseCase(txRunner TxRunner) *ReverseBulkMovementUseCase {
	return &ReverseBulkMovementUseCase{txRunner: txRunner}
}

// Reverse revierte el grupo bulkID exactamente una vez.
// Errores: domain.ErrNotFound si el grupo no existe, domain.ErrNotReversible
// si ya fue revertido, domain.ErrConcurrentModification si deshacer una
// entrada dejaría stock negativo. Devuelve el ID del grupo de reversa creado.
func (uc *ReverseBulkMovementUseCase) Reverse(ctx context.Context, projectID, userID, bulkID string) (string, error) {
	if bulkID == "" {
		return "", domain.ErrInvalidInput
	}

	reversalID := uuid.New().String()
	now := time.Now()

	err := uc.txRunner.Run(ctx, func(
		bulkRepo repository.BulkMovementRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del grupo: dos reversas concurrentes del mismo grupo
		// se serializan y la segunda ve CanBeReversed=false.
		bulk, err := bulkRepo.GetForUpdate(bulkID)
		if err != nil {
			return err
		}
		if bulk == nil {
			return domain.ErrNotFound
		}
		if bulk.ProjectID != projectID {
			return domain.ErrForbidden
		}
		if !bulk.CanBeReversed {
			return domain.ErrNotReversible
		}

		movements, err := movRepo.ListByBulk(bulkID)
		if err != nil {
			return err
		}

		inverseType := entity.MovementTypeIn
		if bulk.Type == entity.MovementTypeIn {
			inverseType = entity.MovementTypeOut
		}
		reversal := &entity.BulkMovement{
			ID:            reversalID,
			ProjectID:     projectID,
			Date:          now,
			Type:          inverseType,
			CanBeReversed: false,
			ReversesID:    &bulkID,
			Notes:         fmt.Sprintf("Reversa del grupo %s. %s", bulkID, bulk.Notes),
			CreatedAt:     now,
			CreatedBy:     userID,
		}
		if err := bulkRepo.Create(reversal); err != nil {
			return err
		}

		for _, mov := range movements {
			product, err := productRepo.GetForUpdate(mov.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}

			// Delta inverso sobre el stock vigente: +cantidad si el original
			// fue salida, -cantidad si fue entrada.
			newStock := product.StockQuantity.Add(mov.Quantity)
			movType := entity.MovementTypeIn
			if mov.Type == entity.MovementTypeIn {
				newStock = product.StockQuantity.Sub(mov.Quantity)
				movType = entity.MovementTypeOut
			}
			if newStock.IsNegative() {
				return domain.ErrConcurrentModification
			}
			if err := productRepo.UpdateStock(mov.ProductID, newStock); err != nil {
				return err
			}

			compensating := &entity.StockMovement{
				ID:        uuid.New().String(),
				ProjectID: projectID,
				ProductID: mov.ProductID,
				Type:      movType,
				Quantity:  mov.Quantity,
				Date:      now,
				IsBulk:    true,
				BulkID:    &reversalID,
				Notes:     fmt.Sprintf("Revierte movimiento %s", mov.ID),
				CreatedAt: now,
				CreatedBy: userID,
			}
			if err := movRepo.Create(compensating); err != nil {
				return err
			}
		}

		// Apaga la bandera: el grupo original no admite una segunda reversa.
		return bulkRepo.MarkReversed(bulkID, reversalID)
	})
	if err != nil {
		return "", err
	}
	return reversalID, nil
}
