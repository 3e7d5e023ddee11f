package dto

import "github.com/shopspring/decimal"

// RecipeIngredientInput línea de receta en creación.
type RecipeIngredientInput struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
}

// CreateRecipeRequest body para POST /api/recipes.
type CreateRecipeRequest struct {
	Name        string                  `json:"name"`
	ServingSize int                     `json:"serving_size"`
	Ingredients []RecipeIngredientInput `json:"ingredients"`
}

// RecipeIngredientResponse línea de receta resuelta contra el producto.
type RecipeIngredientResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// RecipeResponse representación pública de una receta.
type RecipeResponse struct {
	ID          string                     `json:"id"`
	ProjectID   string                     `json:"project_id"`
	Name        string                     `json:"name"`
	ServingSize int                        `json:"serving_size"`
	Ingredients []RecipeIngredientResponse `json:"ingredients"`
}
