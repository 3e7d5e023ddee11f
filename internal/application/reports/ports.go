package reports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catering-api/internal/domain/entity"
)

// ReportLine una línea del reporte de consumo: producto, cantidad y costo.
type ReportLine struct {
	ProductName string
	Unit        string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Cost        decimal.Decimal
}

// ConsumptionReportGenerator genera la orden de consumo imprimible (PDF) de un
// grupo de movimientos.
type ConsumptionReportGenerator interface {
	GenerateConsumptionReport(ctx context.Context, bulk *entity.BulkMovement, lines []ReportLine, totalCost decimal.Decimal) ([]byte, error)
}
