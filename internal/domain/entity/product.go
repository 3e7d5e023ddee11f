package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un insumo del inventario del proyecto de catering.
// StockQuantity solo se muta a través del libro de movimientos (consumo/reversa),
// nunca por el CRUD.
type Product struct {
	ID            string
	ProjectID     string
	Name          string
	Unit          string          // kg, gr, lt, ml, unidad
	Price         decimal.Decimal // costo unitario
	StockQuantity decimal.Decimal // existencia actual, nunca negativa
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
