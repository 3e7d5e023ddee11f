package repository

import "github.com/jhoicas/catering-api/internal/domain/entity"

// MenuRepository define el puerto de persistencia para Menu y sus vínculos a recetas.
type MenuRepository interface {
	Create(menu *entity.Menu) error
	// GetByID devuelve el menú con sus vínculos a recetas; nil si no existe.
	GetByID(id string) (*entity.Menu, error)
	ListByProject(projectID string, limit, offset int) ([]*entity.Menu, error)
	Delete(id string) error
}
