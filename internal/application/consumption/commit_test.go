package consumption_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catering-api/internal/application/consumption"
	"github.com/jhoicas/catering-api/internal/domain"
	"github.com/jhoicas/catering-api/internal/domain/entity"
)

// arma el caso de uso de commit con repos en memoria compartidos.
func buildCommitter() (*consumption.CommitConsumptionUseCase, *fakeBulkRepo, *fakeMovementRepo, *fakeProductRepo) {
	products := newFakeProductRepo()
	bulks := newFakeBulkRepo()
	movs := newFakeMovementRepo()
	runner := newFakeTxRunner(bulks, movs, products)
	return consumption.NewCommitConsumptionUseCase(runner), bulks, movs, products
}

func itemFor(p *entity.Product, needed float64) entity.ConsumptionItem {
	n := decimal.NewFromFloat(needed)
	return entity.ConsumptionItem{
		ProductID:    p.ID,
		ProductName:  p.Name,
		Unit:         p.Unit,
		TotalNeeded:  n,
		CurrentStock: p.StockQuantity,
		Sufficient:   p.StockQuantity.GreaterThanOrEqual(n),
		UnitPrice:    p.Price,
		Cost:         n.Mul(p.Price),
	}
}

// El commit feliz: un grupo, un movimiento de salida por producto y el stock
// descontado exactamente en lo requerido.
func TestCommit_AplicaGrupoMovimientosYStock(t *testing.T) {
	uc, bulks, movs, products := buildCommitter()

	arroz := newProduct(testProject, "Arroz", 10, 3500)
	pollo := newProduct(testProject, "Pollo", 20, 9000)
	require.NoError(t, products.Create(arroz))
	require.NoError(t, products.Create(pollo))

	bulkID, err := uc.Commit(context.Background(), testProject, testUser, consumption.CommitInput{
		MenuLabel:  "Almuerzo corporativo",
		GuestCount: 8,
		Items:      []entity.ConsumptionItem{itemFor(arroz, 2), itemFor(pollo, 6)},
	})
	require.NoError(t, err)
	require.NotEmpty(t, bulkID)

	// Grupo creado, reversible, de tipo salida
	bulk, err := bulks.GetByID(bulkID)
	require.NoError(t, err)
	require.NotNil(t, bulk)
	assert.Equal(t, entity.MovementTypeOut, bulk.Type)
	assert.True(t, bulk.CanBeReversed)
	assert.Nil(t, bulk.ReversesID)
	assert.Equal(t, testUser, bulk.CreatedBy)

	// Un movimiento por producto, todos colgando del mismo grupo
	members, err := movs.ListByBulk(bulkID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	for _, m := range members {
		assert.Equal(t, entity.MovementTypeOut, m.Type)
		assert.True(t, m.IsBulk)
		assert.True(t, m.Quantity.IsPositive(), "la cantidad siempre es positiva; la dirección la da el tipo")
	}

	// Stock descontado exacto
	assert.True(t, products.stock(arroz.ID).Equal(decimal.NewFromInt(8)), "10 - 2 = 8")
	assert.True(t, products.stock(pollo.ID).Equal(decimal.NewFromInt(14)), "20 - 6 = 14")
}

// Insuficiencia detectada antes de escribir: error tipado con los productos
// ofensores y CERO escrituras.
func TestCommit_InsuficienciaNoEscribeNada(t *testing.T) {
	uc, bulks, movs, products := buildCommitter()

	arroz := newProduct(testProject, "Arroz", 1, 3500)
	require.NoError(t, products.Create(arroz))

	item := itemFor(arroz, 5) // Sufficient=false: 1 < 5
	_, err := uc.Commit(context.Background(), testProject, testUser, consumption.CommitInput{
		MenuLabel:  "Evento grande",
		GuestCount: 50,
		Items:      []entity.ConsumptionItem{item},
	})

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	require.Len(t, insufficient.Products, 1)
	assert.Equal(t, arroz.ID, insufficient.Products[0].ProductID)

	assert.Empty(t, bulks.bulks, "no debe crearse ningún grupo")
	assert.Empty(t, movs.movements, "no debe crearse ningún movimiento")
	assert.True(t, products.stock(arroz.ID).Equal(decimal.NewFromInt(1)), "el stock no debe cambiar")
}

// El bulk_id del cliente actúa como llave de idempotencia: el segundo commit
// con el mismo ID falla con ErrDuplicate y no aplica nada.
func TestCommit_BulkIDDuplicadoEsIdempotente(t *testing.T) {
	uc, _, movs, products := buildCommitter()

	arroz := newProduct(testProject, "Arroz", 10, 3500)
	require.NoError(t, products.Create(arroz))

	in := consumption.CommitInput{
		BulkID:     "reintento-cliente-1",
		MenuLabel:  "Almuerzo",
		GuestCount: 8,
		Items:      []entity.ConsumptionItem{itemFor(arroz, 2)},
	}
	first, err := uc.Commit(context.Background(), testProject, testUser, in)
	require.NoError(t, err)
	assert.Equal(t, "reintento-cliente-1", first)

	// Reintento con el MISMO id (el snapshot de items sigue marcando suficiente)
	_, err = uc.Commit(context.Background(), testProject, testUser, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	assert.Len(t, movs.movements, 1, "el reintento no debe duplicar movimientos")
	assert.True(t, products.stock(arroz.ID).Equal(decimal.NewFromInt(8)), "el stock solo se descuenta una vez")
}

// El stock cambió entre calcular y confirmar: la re-verificación dentro de la
// transacción falla y TODO se revierte, incluido el grupo ya insertado.
func TestCommit_StockCambioDuranteLaOperacion(t *testing.T) {
	uc, bulks, movs, products := buildCommitter()

	arroz := newProduct(testProject, "Arroz", 10, 3500)
	require.NoError(t, products.Create(arroz))

	item := itemFor(arroz, 8) // snapshot dice suficiente (10 >= 8)

	// Otro commit consumió casi todo entre el cálculo y la confirmación
	require.NoError(t, products.UpdateStock(arroz.ID, decimal.NewFromInt(3)))

	_, err := uc.Commit(context.Background(), testProject, testUser, consumption.CommitInput{
		MenuLabel:  "Cena",
		GuestCount: 16,
		Items:      []entity.ConsumptionItem{item},
	})
	assert.ErrorIs(t, err, domain.ErrConcurrentModification)

	assert.Empty(t, bulks.bulks, "el rollback debe retirar el grupo")
	assert.Empty(t, movs.movements, "el rollback debe retirar los movimientos")
	assert.True(t, products.stock(arroz.ID).Equal(decimal.NewFromInt(3)), "el stock queda como lo dejó el otro commit")
}

func TestCommit_EntradaInvalida(t *testing.T) {
	uc, _, _, _ := buildCommitter()

	_, err := uc.Commit(context.Background(), testProject, testUser, consumption.CommitInput{
		MenuLabel:  "Sin items",
		GuestCount: 8,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	arroz := newProduct(testProject, "Arroz", 10, 3500)
	_, err = uc.Commit(context.Background(), testProject, testUser, consumption.CommitInput{
		MenuLabel:  "Invitados cero",
		GuestCount: 0,
		Items:      []entity.ConsumptionItem{itemFor(arroz, 1)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cantidad negativa en un ítem es entrada corrupta: se rechaza antes de escribir.
func TestCommit_CantidadNegativaRechazada(t *testing.T) {
	uc, bulks, _, products := buildCommitter()

	arroz := newProduct(testProject, "Arroz", 10, 3500)
	require.NoError(t, products.Create(arroz))

	item := itemFor(arroz, 2)
	item.TotalNeeded = decimal.NewFromInt(-2)

	_, err := uc.Commit(context.Background(), testProject, testUser, consumption.CommitInput{
		MenuLabel:  "Corrupto",
		GuestCount: 8,
		Items:      []entity.ConsumptionItem{item},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, bulks.bulks)
}
