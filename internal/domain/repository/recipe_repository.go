package repository

import "github.com/jhoicas/catering-api/internal/domain/entity"

// RecipeRepository define el puerto de persistencia para Recipe y sus líneas.
type RecipeRepository interface {
	Create(recipe *entity.Recipe) error
	// GetByID devuelve la receta con sus ingredientes; nil si no existe.
	GetByID(id string) (*entity.Recipe, error)
	ListByProject(projectID string, limit, offset int) ([]*entity.Recipe, error)
	Delete(id string) error
}
