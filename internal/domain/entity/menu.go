package entity

import "time"

// Menu agrupa recetas para servir a un evento; cada receta entra con un
// multiplicador entero independiente del número de invitados.
type Menu struct {
	ID        string
	ProjectID string
	Name      string
	Recipes   []MenuRecipeLink
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MenuRecipeLink vincula una receta al menú con su cantidad de "tandas".
type MenuRecipeLink struct {
	ID       string
	MenuID   string
	RecipeID string
	Quantity int // tandas de la receta incluidas en el menú; siempre > 0
}
