package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// StockMovement representa un movimiento individual de stock.
// Quantity es siempre positiva; la dirección la da Type.
// Si IsBulk es true, el movimiento pertenece al grupo BulkID y solo puede
// revertirse junto con todo el grupo.
type StockMovement struct {
	ID        string
	ProjectID string
	ProductID string
	Type      string          // in, out
	Quantity  decimal.Decimal // siempre positiva
	Date      time.Time
	IsBulk    bool
	BulkID    *string // referencia a BulkMovement cuando IsBulk
	Notes     string
	CreatedAt time.Time
	CreatedBy string // UserID
}
