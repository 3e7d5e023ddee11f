package reports

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catering-api/internal/domain"
	"github.com/jhoicas/catering-api/internal/domain/repository"
)

// ConsumptionReportUseCase genera la orden de consumo (PDF) de un grupo bulk:
// la hoja que cocina/almacén usa para despachar los insumos del evento.
type ConsumptionReportUseCase struct {
	bulkRepo    repository.BulkMovementRepository
	movRepo     repository.StockMovementRepository
	productRepo repository.ProductRepository
	generator   ConsumptionReportGenerator
}

// NewConsumptionReportUseCase construye el caso de uso inyectando sus dependencias.
func NewConsumptionReportUseCase(
	bulkRepo repository.BulkMovementRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	generator ConsumptionReportGenerator,
) *ConsumptionReportUseCase {
	return &ConsumptionReportUseCase{
		bulkRepo:    bulkRepo,
		movRepo:     movRepo,
		productRepo: productRepo,
		generator:   generator,
	}
}

// DownloadBulkReport arma las líneas del grupo (producto, cantidad, costo al
// precio vigente) y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el grupo no existe.
//   - domain.ErrForbidden        si el grupo no pertenece al proyecto del token.
func (uc *ConsumptionReportUseCase) DownloadBulkReport(ctx context.Context, projectID, bulkID string) (pdfBytes []byte, filename string, err error) {
	bulk, err := uc.bulkRepo.GetByID(bulkID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener grupo: %w", err)
	}
	if bulk == nil {
		return nil, "", domain.ErrNotFound
	}
	if bulk.ProjectID != projectID {
		return nil, "", domain.ErrForbidden
	}

	movements, err := uc.movRepo.ListByBulk(bulkID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar movimientos: %w", err)
	}

	lines := make([]ReportLine, 0, len(movements))
	totalCost := decimal.Zero
	for _, mov := range movements {
		product, err := uc.productRepo.GetByID(mov.ProductID)
		if err != nil {
			return nil, "", fmt.Errorf("reporte: obtener producto: %w", err)
		}
		if product == nil {
			return nil, "", domain.ErrNotFound
		}
		cost := mov.Quantity.Mul(product.Price)
		totalCost = totalCost.Add(cost)
		lines = append(lines, ReportLine{
			ProductName: product.Name,
			Unit:        product.Unit,
			Quantity:    mov.Quantity,
			UnitPrice:   product.Price,
			Cost:        cost,
		})
	}

	pdfBytes, err = uc.generator.GenerateConsumptionReport(ctx, bulk, lines, totalCost)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar PDF: %w", err)
	}
	filename = fmt.Sprintf("consumo-%s.pdf", bulk.Date.Format("2006-01-02"))
	return pdfBytes, filename, nil
}
