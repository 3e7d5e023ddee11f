package entity

import "github.com/shopspring/decimal"

// ConsumptionItem es el requerimiento agregado de un producto para servir un
// menú a N invitados. Es un valor derivado: se recalcula en cada petición y no
// se persiste hasta que el consumo se confirma en el libro de movimientos.
//
// CurrentStock es un snapshot tomado una sola vez durante el cálculo;
// Sufficient se evalúa siempre contra ese mismo snapshot.
type ConsumptionItem struct {
	ProductID    string
	ProductName  string
	Unit         string
	TotalNeeded  decimal.Decimal // agregado entre recetas; nunca negativo
	CurrentStock decimal.Decimal // snapshot al momento del cálculo
	Sufficient   bool            // CurrentStock >= TotalNeeded
	UnitPrice    decimal.Decimal // precio observado durante el cálculo
	Cost         decimal.Decimal // TotalNeeded * UnitPrice
}
