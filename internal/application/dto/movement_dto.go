package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementRowDTO un movimiento individual dentro del listado.
type MovementRowDTO struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Cost        decimal.Decimal `json:"cost"` // Quantity * UnitPrice al momento de la lectura
	Date        time.Time       `json:"date"`
	Notes       string          `json:"notes,omitempty"`
}

// MovementGroupDTO una transacción lógica del libro: un grupo bulk con sus
// detalles, o un movimiento suelto (IsBulk=false, un solo detalle).
type MovementGroupDTO struct {
	IsBulk        bool             `json:"is_bulk"`
	BulkID        string           `json:"bulk_id,omitempty"`
	Type          string           `json:"type"`
	Date          time.Time        `json:"date"`
	Notes         string           `json:"notes,omitempty"`
	CanBeReversed bool             `json:"can_be_reversed"`
	TotalCost     decimal.Decimal  `json:"total_cost"`
	Details       []MovementRowDTO `json:"details"`
}
