package movements

import (
	"github.com/jhoicas/catering-api/internal/application/dto"
	"github.com/jhoicas/catering-api/internal/domain/repository"
)

// GroupMovements reagrupa un stream plano de movimientos en transacciones
// lógicas para presentación y auditoría: los movimientos que comparten bulk_id
// se pliegan en un solo grupo con costo total acumulado; los sueltos quedan
// como grupos de un solo detalle.
//
// Es un fold puro y sin estado sobre la ventana que entregue el caller. Los
// filtros de fecha actúan sobre movimientos individuales, no sobre límites de
// grupo: un grupo partido por la ventana se muestra parcial. Limitación
// aceptada de la vista, no un defecto del libro.
func GroupMovements(rows []repository.MovementWithProduct) []dto.MovementGroupDTO {
	groups := make([]dto.MovementGroupDTO, 0, len(rows))
	index := make(map[string]int) // bulkID -> posición en groups

	for _, row := range rows {
		mov := row.Movement
		cost := mov.Quantity.Mul(row.UnitPrice)
		detail := dto.MovementRowDTO{
			ID:          mov.ID,
			ProductID:   mov.ProductID,
			ProductName: row.ProductName,
			Type:        mov.Type,
			Quantity:    mov.Quantity,
			Unit:        row.Unit,
			UnitPrice:   row.UnitPrice,
			Cost:        cost,
			Date:        mov.Date,
			Notes:       mov.Notes,
		}

		if !mov.IsBulk || mov.BulkID == nil {
			groups = append(groups, dto.MovementGroupDTO{
				IsBulk:    false,
				Type:      mov.Type,
				Date:      mov.Date,
				Notes:     mov.Notes,
				TotalCost: cost,
				Details:   []dto.MovementRowDTO{detail},
			})
			continue
		}

		bulkID := *mov.BulkID
		if pos, ok := index[bulkID]; ok {
			groups[pos].TotalCost = groups[pos].TotalCost.Add(cost)
			groups[pos].Details = append(groups[pos].Details, detail)
			continue
		}
		index[bulkID] = len(groups)
		groups = append(groups, dto.MovementGroupDTO{
			IsBulk:        true,
			BulkID:        bulkID,
			Type:          mov.Type,
			Date:          mov.Date,
			Notes:         row.BulkNotes,
			CanBeReversed: row.CanBeReversed,
			TotalCost:     cost,
			Details:       []dto.MovementRowDTO{detail},
		})
	}
	return groups
}
