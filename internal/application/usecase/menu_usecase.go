package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catering-api/internal/application/dto"
	"github.com/jhoicas/catering-api/internal/domain"
	"github.com/jhoicas/catering-api/internal/domain/entity"
	"github.com/jhoicas/catering-api/internal/domain/repository"
)

var decimalZero = decimal.Zero

// MenuUseCase casos de uso CRUD para menús y sus vínculos a recetas.
type MenuUseCase struct {
	repo       repository.MenuRepository
	recipeRepo repository.RecipeRepository
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(repo repository.MenuRepository, recipeRepo repository.RecipeRepository) *MenuUseCase {
	return &MenuUseCase{repo: repo, recipeRepo: recipeRepo}
}

// Create crea un menú con sus vínculos. Cada vínculo debe referenciar una
// receta existente del proyecto con cantidad de tandas positiva.
func (uc *MenuUseCase) Create(projectID string, in dto.CreateMenuRequest) (*dto.MenuResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	menu := &entity.Menu{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, link := range in.Recipes {
		if link.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		recipe, err := uc.recipeRepo.GetByID(link.RecipeID)
		if err != nil {
			return nil, err
		}
		if recipe == nil || recipe.ProjectID != projectID {
			return nil, domain.ErrNotFound
		}
		menu.Recipes = append(menu.Recipes, entity.MenuRecipeLink{
			ID:       uuid.New().String(),
			MenuID:   menu.ID,
			RecipeID: link.RecipeID,
			Quantity: link.Quantity,
		})
	}
	if err := uc.repo.Create(menu); err != nil {
		return nil, err
	}
	return uc.GetByID(projectID, menu.ID)
}

// GetByID obtiene un menú con sus vínculos, resolviendo el nombre de cada receta.
func (uc *MenuUseCase) GetByID(projectID, id string) (*dto.MenuResponse, error) {
	menu, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, domain.ErrNotFound
	}
	if menu.ProjectID != projectID {
		return nil, domain.ErrForbidden
	}
	resp := toMenuResponse(menu)
	for i, link := range menu.Recipes {
		recipe, err := uc.recipeRepo.GetByID(link.RecipeID)
		if err != nil {
			return nil, err
		}
		if recipe != nil {
			resp.Recipes[i].RecipeName = recipe.Name
		}
	}
	return resp, nil
}

// List lista menús del proyecto con paginación.
func (uc *MenuUseCase) List(projectID string, page dto.PageRequest) ([]*dto.MenuResponse, error) {
	page.DefaultPage()
	menus, err := uc.repo.ListByProject(projectID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MenuResponse, 0, len(menus))
	for _, m := range menus {
		out = append(out, toMenuResponse(m))
	}
	return out, nil
}

func toMenuResponse(m *entity.Menu) *dto.MenuResponse {
	resp := &dto.MenuResponse{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		Name:      m.Name,
		Recipes:   make([]dto.MenuRecipeResponse, 0, len(m.Recipes)),
	}
	for _, link := range m.Recipes {
		resp.Recipes = append(resp.Recipes, dto.MenuRecipeResponse{
			RecipeID: link.RecipeID,
			Quantity: link.Quantity,
		})
	}
	return resp
}
