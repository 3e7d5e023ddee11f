package dto

// MenuRecipeInput vínculo receta-menú en creación.
type MenuRecipeInput struct {
	RecipeID string `json:"recipe_id"`
	Quantity int    `json:"quantity"` // tandas de la receta en el menú
}

// CreateMenuRequest body para POST /api/menus.
type CreateMenuRequest struct {
	Name    string            `json:"name"`
	Recipes []MenuRecipeInput `json:"recipes"`
}

// MenuRecipeResponse vínculo receta-menú en respuestas.
type MenuRecipeResponse struct {
	RecipeID   string `json:"recipe_id"`
	RecipeName string `json:"recipe_name,omitempty"`
	Quantity   int    `json:"quantity"`
}

// MenuResponse representación pública de un menú.
type MenuResponse struct {
	ID        string               `json:"id"`
	ProjectID string               `json:"project_id"`
	Name      string               `json:"name"`
	Recipes   []MenuRecipeResponse `json:"recipes"`
}
