package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catering-api/internal/application/consumption"
	"github.com/jhoicas/catering-api/internal/application/dto"
	"github.com/jhoicas/catering-api/internal/domain"
	"github.com/jhoicas/catering-api/internal/domain/entity"
	"github.com/jhoicas/catering-api/internal/domain/repository"
)

// RecipeUseCase casos de uso CRUD para recetas y sus líneas de insumos.
type RecipeUseCase struct {
	repo        repository.RecipeRepository
	productRepo repository.ProductRepository
	resolver    *consumption.IngredientResolver
}

// NewRecipeUseCase construye el caso de uso.
func NewRecipeUseCase(repo repository.RecipeRepository, productRepo repository.ProductRepository, resolver *consumption.IngredientResolver) *RecipeUseCase {
	return &RecipeUseCase{repo: repo, productRepo: productRepo, resolver: resolver}
}

// Create crea una receta con sus líneas. ServingSize debe ser > 0 y cada línea
// referenciar un producto existente con cantidad positiva.
func (uc *RecipeUseCase) Create(projectID string, in dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	if in.Name == "" || in.ServingSize <= 0 {
		return nil, domain.ErrInvalidRecipe
	}
	now := time.Now()
	recipe := &entity.Recipe{
		ID:          uuid.New().String(),
		ProjectID:   projectID,
		Name:        in.Name,
		ServingSize: in.ServingSize,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, line := range in.Ingredients {
		if line.Quantity.LessThanOrEqual(decimalZero) {
			return nil, domain.ErrInvalidRecipe
		}
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.ProjectID != projectID {
			return nil, domain.ErrNotFound
		}
		unit := line.Unit
		if unit == "" {
			unit = product.Unit
		}
		recipe.Ingredients = append(recipe.Ingredients, entity.RecipeIngredient{
			ID:        uuid.New().String(),
			RecipeID:  recipe.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Unit:      unit,
		})
	}
	if err := uc.repo.Create(recipe); err != nil {
		return nil, err
	}
	return uc.GetByID(projectID, recipe.ID)
}

// GetByID obtiene una receta con sus líneas resueltas contra el producto.
func (uc *RecipeUseCase) GetByID(projectID, id string) (*dto.RecipeResponse, error) {
	recipe, resolved, err := uc.resolver.Resolve(id)
	if err != nil {
		return nil, err
	}
	if recipe.ProjectID != projectID {
		return nil, domain.ErrForbidden
	}
	return toRecipeResponse(recipe, resolved), nil
}

// List lista recetas del proyecto con paginación (sin resolver líneas).
func (uc *RecipeUseCase) List(projectID string, page dto.PageRequest) ([]*dto.RecipeResponse, error) {
	page.DefaultPage()
	recipes, err := uc.repo.ListByProject(projectID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, toRecipeResponse(r, nil))
	}
	return out, nil
}

func toRecipeResponse(r *entity.Recipe, resolved []consumption.ResolvedIngredient) *dto.RecipeResponse {
	resp := &dto.RecipeResponse{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		Name:        r.Name,
		ServingSize: r.ServingSize,
		Ingredients: make([]dto.RecipeIngredientResponse, 0, len(resolved)),
	}
	for _, ing := range resolved {
		resp.Ingredients = append(resp.Ingredients, dto.RecipeIngredientResponse{
			ProductID:   ing.ProductID,
			ProductName: ing.ProductName,
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
			UnitPrice:   ing.UnitPrice,
		})
	}
	return resp
}
