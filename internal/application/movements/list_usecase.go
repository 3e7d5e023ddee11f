package movements

import (
	"context"
	"time"

	"github.com/jhoicas/catering-api/internal/application/dto"
	"github.com/jhoicas/catering-api/internal/domain/repository"
)

// ListMovementsUseCase lista el libro de movimientos de un proyecto, agrupado
// en transacciones lógicas vía GroupMovements.
type ListMovementsUseCase struct {
	movRepo repository.StockMovementRepository
}

// NewListMovementsUseCase construye el caso de uso.
func NewListMovementsUseCase(movRepo repository.StockMovementRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{movRepo: movRepo}
}

// List devuelve los movimientos del proyecto en la ventana [from, to] (ambos
// opcionales), paginados por movimiento individual y luego agrupados.
func (uc *ListMovementsUseCase) List(ctx context.Context, projectID string, from, to *time.Time, page dto.PageRequest) ([]dto.MovementGroupDTO, error) {
	page.DefaultPage()
	rows, err := uc.movRepo.ListByProject(projectID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return GroupMovements(rows), nil
}
