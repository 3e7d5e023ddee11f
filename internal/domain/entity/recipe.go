package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe representa una receta calibrada para ServingSize comensales.
// El requerimiento de insumos escala linealmente con el número de invitados
// respecto a esa base.
type Recipe struct {
	ID          string
	ProjectID   string
	Name        string
	ServingSize int // comensales para los que está calculada la lista de insumos; siempre > 0
	Ingredients []RecipeIngredient
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecipeIngredient es una línea de receta: cantidad de un producto por ServingSize.
type RecipeIngredient struct {
	ID        string
	RecipeID  string
	ProductID string
	Quantity  decimal.Decimal // cantidad por ServingSize comensales
	Unit      string
}
