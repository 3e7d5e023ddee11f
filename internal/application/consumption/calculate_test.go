package consumption_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catering-api/internal/application/consumption"
	"github.com/jhoicas/catering-api/internal/domain"
)

// arma un calculador con repos en memoria listos para sembrar fixtures.
func buildCalculator() (*consumption.CalculateConsumptionUseCase, *fakeMenuRepo, *fakeRecipeRepo, *fakeProductRepo) {
	products := newFakeProductRepo()
	recipes := newFakeRecipeRepo()
	menus := newFakeMenuRepo()
	resolver := consumption.NewIngredientResolver(recipes, products)
	uc := consumption.NewCalculateConsumptionUseCase(menus, resolver)
	return uc, menus, recipes, products
}

// Receta de arroz para 4 con 0.5 kg por porción base, menú con 2 tandas,
// 8 invitados: 0.5 * 2 * (8/4) = 2 kg.
func TestCalculate_EscaladoBasico(t *testing.T) {
	uc, menus, recipes, products := buildCalculator()

	arroz := newProduct(testProject, "Arroz", 10, 3500)
	require.NoError(t, products.Create(arroz))
	receta := newRecipe(testProject, "Arroz con pollo", 4, ingredient(arroz.ID, 0.5))
	require.NoError(t, recipes.Create(receta))
	menu := newMenu(testProject, "Almuerzo", link(receta.ID, 2))
	require.NoError(t, menus.Create(menu))

	items, err := uc.Calculate(context.Background(), testProject, menu.ID, 8)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, arroz.ID, item.ProductID)
	assert.True(t, item.TotalNeeded.Equal(decimal.NewFromInt(2)), "0.5 * 2 tandas * 2x = 2 kg, se obtuvo %s", item.TotalNeeded)
	assert.True(t, item.Sufficient, "hay 10 kg en stock para 2 kg requeridos")
	assert.True(t, item.Cost.Equal(decimal.NewFromInt(7000)), "2 kg * 3500 = 7000")
}

// Un insumo compartido entre recetas produce UNA sola línea con el total agregado.
func TestCalculate_InsumoCompartidoSeAgrega(t *testing.T) {
	uc, menus, recipes, products := buildCalculator()

	aceite := newProduct(testProject, "Aceite", 5, 12000)
	require.NoError(t, products.Create(aceite))
	fritura := newRecipe(testProject, "Fritura", 4, ingredient(aceite.ID, 0.2))
	sofrito := newRecipe(testProject, "Sofrito", 4, ingredient(aceite.ID, 0.1))
	require.NoError(t, recipes.Create(fritura))
	require.NoError(t, recipes.Create(sofrito))
	menu := newMenu(testProject, "Menú frito", link(fritura.ID, 1), link(sofrito.ID, 1))
	require.NoError(t, menus.Create(menu))

	items, err := uc.Calculate(context.Background(), testProject, menu.ID, 8)
	require.NoError(t, err)
	require.Len(t, items, 1, "el mismo producto en dos recetas debe agregarse en una línea")

	// (0.2 + 0.1) * 1 tanda * 2x = 0.6
	assert.True(t, items[0].TotalNeeded.Equal(decimal.NewFromFloat(0.6)),
		"se esperaban 0.6 kg agregados, se obtuvo %s", items[0].TotalNeeded)
	assert.True(t, items[0].CurrentStock.Equal(decimal.NewFromInt(5)),
		"el stock debe ser el mismo snapshot para ambas recetas")
}

// Stock exactamente igual a lo requerido cuenta como suficiente.
func TestCalculate_SuficienciaEnElLimite(t *testing.T) {
	uc, menus, recipes, products := buildCalculator()

	papa := newProduct(testProject, "Papa", 2, 2000)
	require.NoError(t, products.Create(papa))
	receta := newRecipe(testProject, "Papa salada", 4, ingredient(papa.ID, 1))
	require.NoError(t, recipes.Create(receta))
	menu := newMenu(testProject, "Entrada", link(receta.ID, 1))
	require.NoError(t, menus.Create(menu))

	items, err := uc.Calculate(context.Background(), testProject, menu.ID, 8)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].TotalNeeded.Equal(decimal.NewFromInt(2)))
	assert.True(t, items[0].Sufficient, "stock == requerido debe ser suficiente")
}

func TestCalculate_MenuVacio(t *testing.T) {
	uc, menus, _, _ := buildCalculator()
	menu := newMenu(testProject, "Menú sin recetas")
	require.NoError(t, menus.Create(menu))

	_, err := uc.Calculate(context.Background(), testProject, menu.ID, 10)
	assert.ErrorIs(t, err, domain.ErrEmptyMenu)
}

func TestCalculate_InvitadosInvalidos(t *testing.T) {
	uc, _, _, _ := buildCalculator()

	_, err := uc.Calculate(context.Background(), testProject, "cualquiera", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Calculate(context.Background(), testProject, "cualquiera", -5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalculate_MenuInexistente(t *testing.T) {
	uc, _, _, _ := buildCalculator()
	_, err := uc.Calculate(context.Background(), testProject, "no-existe", 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCalculate_MenuDeOtroProyecto(t *testing.T) {
	uc, menus, recipes, products := buildCalculator()

	sal := newProduct(testOtherProject, "Sal", 1, 500)
	require.NoError(t, products.Create(sal))
	receta := newRecipe(testOtherProject, "Base", 4, ingredient(sal.ID, 0.01))
	require.NoError(t, recipes.Create(receta))
	menu := newMenu(testOtherProject, "Ajeno", link(receta.ID, 1))
	require.NoError(t, menus.Create(menu))

	_, err := uc.Calculate(context.Background(), testProject, menu.ID, 10)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Receta con porción base cero no debe dividir: falla con ErrInvalidRecipe.
func TestCalculate_PorcionCeroEsRecetaInvalida(t *testing.T) {
	uc, menus, recipes, products := buildCalculator()

	sal := newProduct(testProject, "Sal", 1, 500)
	require.NoError(t, products.Create(sal))
	receta := newRecipe(testProject, "Receta rota", 0, ingredient(sal.ID, 0.01))
	require.NoError(t, recipes.Create(receta))
	menu := newMenu(testProject, "Menú roto", link(receta.ID, 1))
	require.NoError(t, menus.Create(menu))

	_, err := uc.Calculate(context.Background(), testProject, menu.ID, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidRecipe)
}

// Calcular no escribe: dos lecturas seguidas dan el mismo resultado y el stock no cambia.
func TestCalculate_EsLecturaPura(t *testing.T) {
	uc, menus, recipes, products := buildCalculator()

	pollo := newProduct(testProject, "Pollo", 20, 9000)
	require.NoError(t, products.Create(pollo))
	receta := newRecipe(testProject, "Pollo asado", 4, ingredient(pollo.ID, 1.5))
	require.NoError(t, recipes.Create(receta))
	menu := newMenu(testProject, "Plato fuerte", link(receta.ID, 1))
	require.NoError(t, menus.Create(menu))

	first, err := uc.Calculate(context.Background(), testProject, menu.ID, 12)
	require.NoError(t, err)
	second, err := uc.Calculate(context.Background(), testProject, menu.ID, 12)
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.True(t, first[0].TotalNeeded.Equal(second[0].TotalNeeded))
	assert.True(t, products.stock(pollo.ID).Equal(decimal.NewFromInt(20)), "calcular no debe tocar el stock")
}
