package consumption

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catering-api/internal/domain"
	"github.com/jhoicas/catering-api/internal/domain/entity"
	"github.com/jhoicas/catering-api/internal/domain/repository"
)

// ResolvedIngredient es una línea de receta resuelta contra el producto:
// cantidad por porción base más el precio y stock observados en la resolución.
type ResolvedIngredient struct {
	ProductID     string
	ProductName   string
	Quantity      decimal.Decimal // por ServingSize comensales de la receta
	Unit          string
	UnitPrice     decimal.Decimal
	StockSnapshot decimal.Decimal
}

// IngredientResolver expande una receta en su lista de insumos (join
// RecipeIngredient × Product). Lectura pura, sin efectos.
type IngredientResolver struct {
	recipeRepo  repository.RecipeRepository
	productRepo repository.ProductRepository
}

// NewIngredientResolver construye el resolver.
func NewIngredientResolver(recipeRepo repository.RecipeRepository, productRepo repository.ProductRepository) *IngredientResolver {
	return &IngredientResolver{recipeRepo: recipeRepo, productRepo: productRepo}
}

// Resolve devuelve la receta y sus líneas resueltas.
// Falla con domain.ErrNotFound si la receta no existe; una receta sin
// ingredientes devuelve lista vacía (aporta cero al consumo, no es error).
func (r *IngredientResolver) Resolve(recipeID string) (*entity.Recipe, []ResolvedIngredient, error) {
	return r.resolve(recipeID, make(map[string]*entity.Product))
}

// resolve usa un cache de productos compartido por el caller, para que un
// cálculo completo lea cada producto una sola vez (snapshot consistente de
// stock y precio aunque el mismo insumo aparezca en varias recetas).
func (r *IngredientResolver) resolve(recipeID string, products map[string]*entity.Product) (*entity.Recipe, []ResolvedIngredient, error) {
	recipe, err := r.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, nil, err
	}
	if recipe == nil {
		return nil, nil, domain.ErrNotFound
	}

	resolved := make([]ResolvedIngredient, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		product, ok := products[ing.ProductID]
		if !ok {
			product, err = r.productRepo.GetByID(ing.ProductID)
			if err != nil {
				return nil, nil, err
			}
			if product == nil {
				return nil, nil, domain.ErrNotFound
			}
			products[ing.ProductID] = product
		}
		unit := ing.Unit
		if unit == "" {
			unit = product.Unit
		}
		resolved = append(resolved, ResolvedIngredient{
			ProductID:     product.ID,
			ProductName:   product.Name,
			Quantity:      ing.Quantity,
			Unit:          unit,
			UnitPrice:     product.Price,
			StockSnapshot: product.StockQuantity,
		})
	}
	return recipe, resolved, nil
}
