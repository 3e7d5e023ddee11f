package dto

import "github.com/shopspring/decimal"

// CalculateConsumptionRequest body para POST /api/consumption/calculate.
type CalculateConsumptionRequest struct {
	MenuID     string `json:"menu_id"`
	GuestCount int    `json:"guest_count"`
}

// ConsumptionItemDTO requerimiento agregado de un producto para el consumo.
type ConsumptionItemDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Unit         string          `json:"unit"`
	TotalNeeded  decimal.Decimal `json:"total_needed"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	Sufficient   bool            `json:"sufficient"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Cost         decimal.Decimal `json:"cost"`
}

// CalculateConsumptionResponse resultado del cálculo, previo a confirmar.
type CalculateConsumptionResponse struct {
	Items         []ConsumptionItemDTO `json:"items"`
	TotalCost     decimal.Decimal      `json:"total_cost"`
	AllSufficient bool                 `json:"all_sufficient"`
}

// CommitConsumptionRequest body para POST /api/consumption/commit.
// BulkID es opcional: si el cliente lo envía actúa como llave de idempotencia
// (un segundo commit con el mismo ID falla con DUPLICATE).
type CommitConsumptionRequest struct {
	BulkID     string               `json:"bulk_id,omitempty"`
	MenuLabel  string               `json:"menu_label"`
	GuestCount int                  `json:"guest_count"`
	Items      []ConsumptionItemDTO `json:"items"`
}

// CommitConsumptionResponse devuelve el ID del grupo creado, para auditoría y reversa.
type CommitConsumptionResponse struct {
	BulkMovementID string `json:"bulk_movement_id"`
}

// ReverseConsumptionResponse devuelve el ID del grupo de reversa creado.
type ReverseConsumptionResponse struct {
	ReversalBulkID string `json:"reversal_bulk_id"`
}

// InsufficientProductDTO identifica un producto sin stock suficiente.
type InsufficientProductDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
}

// InsufficientStockResponse error 409 con el detalle de productos que no alcanzan.
type InsufficientStockResponse struct {
	Code     string                   `json:"code"`
	Message  string                   `json:"message"`
	Products []InsufficientProductDTO `json:"products"`
}
