package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catering-api/internal/domain/entity"
)

// MovementWithProduct es la fila de lectura del libro de movimientos: el
// movimiento más los datos del producto al momento de la consulta (nombre y
// precio vigente) y el resumen del grupo si es bulk.
type MovementWithProduct struct {
	Movement      entity.StockMovement
	ProductName   string
	Unit          string
	UnitPrice     decimal.Decimal // precio vigente al momento de la lectura
	BulkNotes     string          // nota del BulkMovement (vacía si no es bulk)
	CanBeReversed bool            // estado del grupo (false si no es bulk)
}

// StockMovementRepository define el puerto de persistencia para movimientos de stock.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// ListByBulk devuelve los movimientos del grupo en orden de inserción.
	ListByBulk(bulkID string) ([]*entity.StockMovement, error)
	// ListByProject devuelve movimientos del proyecto con datos de producto,
	// filtrados por fecha de movimiento individual (los grupos pueden quedar
	// partidos por la ventana; ver movements.GroupMovements).
	ListByProject(projectID string, from, to *time.Time, limit, offset int) ([]MovementWithProduct, error)
}
