package consumption

import (
	"context"

	"github.com/jhoicas/catering-api/internal/domain"
	domconsumption "github.com/jhoicas/catering-api/internal/domain/consumption"
	"github.com/jhoicas/catering-api/internal/domain/entity"
	"github.com/jhoicas/catering-api/internal/domain/repository"
)

// CalculateConsumptionUseCase calcula el requerimiento de insumos de un menú
// para un número de invitados: cantidad agregada por producto, suficiencia
// contra el stock actual y costo por línea.
//
// El cálculo es puro respecto al estado: no escribe nada y leer dos veces con
// el mismo stock produce el mismo resultado. El stock de cada producto se lee
// una sola vez (snapshot) aunque el insumo aparezca en varias recetas del menú.
type CalculateConsumptionUseCase struct {
	menuRepo repository.MenuRepository
	resolver *IngredientResolver
}

// NewCalculateConsumptionUseCase construye el caso de uso.
func NewCalculateConsumptionUseCase(menuRepo repository.MenuRepository, resolver *IngredientResolver) *CalculateConsumptionUseCase {
	return &CalculateConsumptionUseCase{menuRepo: menuRepo, resolver: resolver}
}

// Calculate devuelve un ConsumptionItem por producto, en orden de primera aparición.
//
// Por cada vínculo (receta, tandas) del menú:
//
//	multiplicador = invitados / tamaño de porción de la receta (real, sin truncar)
//	necesario     = cantidad por porción * tandas * multiplicador
//
// y lo necesario se acumula por producto. Errores: domain.ErrInvalidInput
// (invitados <= 0), domain.ErrNotFound (menú o receta ausente),
// domain.ErrEmptyMenu, domain.ErrInvalidRecipe (porción o tandas <= 0).
func (uc *CalculateConsumptionUseCase) Calculate(ctx context.Context, projectID, menuID string, guestCount int) ([]entity.ConsumptionItem, error) {
	if guestCount <= 0 {
		return nil, domain.ErrInvalidInput
	}

	menu, err := uc.menuRepo.GetByID(menuID)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, domain.ErrNotFound
	}
	if menu.ProjectID != projectID {
		return nil, domain.ErrForbidden
	}
	if len(menu.Recipes) == 0 {
		return nil, domain.ErrEmptyMenu
	}

	// Cache de productos del cálculo completo: cada producto se lee una sola
	// vez, así la suficiencia se evalúa siempre contra el mismo snapshot.
	products := make(map[string]*entity.Product)
	items := make(map[string]*entity.ConsumptionItem)
	order := make([]string, 0)

	for _, link := range menu.Recipes {
		if link.Quantity <= 0 {
			return nil, domain.ErrInvalidRecipe
		}
		recipe, resolved, err := uc.resolver.resolve(link.RecipeID, products)
		if err != nil {
			return nil, err
		}
		if recipe.ServingSize <= 0 {
			return nil, domain.ErrInvalidRecipe
		}

		multiplier := domconsumption.ServingMultiplier(guestCount, recipe.ServingSize)
		for _, ing := range resolved {
			needed := domconsumption.ScaledRequirement(ing.Quantity, link.Quantity, multiplier)

			item, ok := items[ing.ProductID]
			if !ok {
				item = &entity.ConsumptionItem{
					ProductID:    ing.ProductID,
					ProductName:  ing.ProductName,
					Unit:         ing.Unit,
					CurrentStock: ing.StockSnapshot,
					UnitPrice:    ing.UnitPrice,
				}
				items[ing.ProductID] = item
				order = append(order, ing.ProductID)
			}
			item.TotalNeeded = item.TotalNeeded.Add(needed)
		}
	}

	result := make([]entity.ConsumptionItem, 0, len(order))
	for _, productID := range order {
		item := items[productID]
		item.Sufficient = item.CurrentStock.GreaterThanOrEqual(item.TotalNeeded)
		item.Cost = item.TotalNeeded.Mul(item.UnitPrice)
		result = append(result, *item)
	}
	return result, nil
}
