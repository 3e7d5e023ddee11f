package consumption_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catering-api/internal/application/consumption"
	"github.com/jhoicas/catering-api/internal/domain"
	"github.com/jhoicas/catering-api/internal/domain/entity"
)

// arma commit + reverse sobre el mismo estado en memoria.
func buildReverser() (*consumption.CommitConsumptionUseCase, *consumption.ReverseBulkMovementUseCase, *fakeBulkRepo, *fakeMovementRepo, *fakeProductRepo) {
	products := newFakeProductRepo()
	bulks := newFakeBulkRepo()
	movs := newFakeMovementRepo()
	runner := newFakeTxRunner(bulks, movs, products)
	return consumption.NewCommitConsumptionUseCase(runner),
		consumption.NewReverseBulkMovementUseCase(runner),
		bulks, movs, products
}

// Revertir un consumo restaura el stock exacto y deja el historial completo:
// el grupo original intacto más un grupo de reversa con sus compensaciones.
func TestReverse_RestauraStockYConservaHistorial(t *testing.T) {
	commitUC, reverseUC, bulks, movs, products := buildReverser()

	arroz := newProduct(testProject, "Arroz", 10, 3500)
	pollo := newProduct(testProject, "Pollo", 20, 9000)
	require.NoError(t, products.Create(arroz))
	require.NoError(t, products.Create(pollo))

	bulkID, err := commitUC.Commit(context.Background(), testProject, testUser, consumption.CommitInput{
		MenuLabel:  "Almuerzo",
		GuestCount: 8,
		Items:      []entity.ConsumptionItem{itemFor(arroz, 2), itemFor(pollo, 6)},
	})
	require.NoError(t, err)

	reversalID, err := reverseUC.Reverse(context.Background(), testProject, testUser, bulkID)
	require.NoError(t, err)
	require.NotEmpty(t, reversalID)
	assert.NotEqual(t, bulkID, reversalID, "la reversa es un grupo nuevo, no muta el original")

	// Stock restaurado exacto
	assert.True(t, products.stock(arroz.ID).Equal(decimal.NewFromInt(10)))
	assert.True(t, products.stock(pollo.ID).Equal(decimal.NewFromInt(20)))

	// El grupo original sigue existiendo pero ya no es reversible
	original, err := bulks.GetByID(bulkID)
	require.NoError(t, err)
	require.NotNil(t, original)
	assert.False(t, original.CanBeReversed)

	// El grupo de reversa apunta al original, tiene tipo inverso y no admite reversa
	reversal, err := bulks.GetByID(reversalID)
	require.NoError(t, err)
	require.NotNil(t, reversal)
	assert.Equal(t, entity.MovementTypeIn, reversal.Type)
	assert.False(t, reversal.CanBeReversed, "una reversa no puede revertirse")
	require.NotNil(t, reversal.ReversesID)
	assert.Equal(t, bulkID, *reversal.ReversesID)

	// Historial append-only: los movimientos originales siguen, más uno
	// compensatorio por cada miembro
	originals, err := movs.ListByBulk(bulkID)
	require.NoError(t, err)
	assert.Len(t, originals, 2, "los movimientos originales no se tocan")

	compensating, err := movs.ListByBulk(reversalID)
	require.NoError(t, err)
	require.Len(t, compensating, 2)
	for _, m := range compensating {
		assert.Equal(t, entity.MovementTypeIn, m.Type)
		assert.True(t, m.Quantity.IsPositive())
	}
}

// Exactamente una vez: la segunda reversa del mismo grupo falla sin escribir.
func TestReverse_SegundaReversaFalla(t *testing.T) {
	commitUC, reverseUC, _, movs, products := buildReverser()

	arroz := newProduct(testProject, "Arroz", 10, 3500)
	require.NoError(t, products.Create(arroz))

	bulkID, err := commitUC.Commit(context.Background(), testProject, testUser, consumption.CommitInput{
		MenuLabel:  "Almuerzo",
		GuestCount: 8,
		Items:      []entity.ConsumptionItem{itemFor(arroz, 2)},
	})
	require.NoError(t, err)

	_, err = reverseUC.Reverse(context.Background(), testProject, testUser, bulkID)
	require.NoError(t, err)

	movsAfterFirst := len(movs.movements)
	stockAfterFirst := products.stock(arroz.ID)

	_, err = reverseUC.Reverse(context.Background(), testProject, testUser, bulkID)
	assert.ErrorIs(t, err, domain.ErrNotReversible)

	assert.Len(t, movs.movements, movsAfterFirst, "la segunda reversa no debe escribir movimientos")
	assert.True(t, products.stock(arroz.ID).Equal(stockAfterFirst), "la segunda reversa no debe tocar stock")
}

func TestReverse_GrupoInexistente(t *testing.T) {
	_, reverseUC, _, _, _ := buildReverser()
	_, err := reverseUC.Reverse(context.Background(), testProject, testUser, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReverse_GrupoDeOtroProyecto(t *testing.T) {
	commitUC, reverseUC, _, _, products := buildReverser()

	arroz := newProduct(testOtherProject, "Arroz", 10, 3500)
	require.NoError(t, products.Create(arroz))

	bulkID, err := commitUC.Commit(context.Background(), testOtherProject, testUser, consumption.CommitInput{
		MenuLabel:  "Ajeno",
		GuestCount: 8,
		Items:      []entity.ConsumptionItem{itemFor(arroz, 2)},
	})
	require.NoError(t, err)

	_, err = reverseUC.Reverse(context.Background(), testProject, testUser, bulkID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Revertir una ENTRADA descuenta stock; si ya se consumió, dejaría stock
// negativo y la transacción completa debe fallar.
func TestReverse_NoDejaStockNegativo(t *testing.T) {
	_, reverseUC, bulks, movs, products := buildReverser()

	harina := newProduct(testProject, "Harina", 1, 2500)
	require.NoError(t, products.Create(harina))

	// Grupo de entrada registrado a mano: ingresaron 5 kg que ya se gastaron
	now := time.Now()
	bulkID := uuid.New().String()
	require.NoError(t, bulks.Create(&entity.BulkMovement{
		ID: bulkID, ProjectID: testProject, Date: now,
		Type: entity.MovementTypeIn, CanBeReversed: true,
		CreatedAt: now, CreatedBy: testUser,
	}))
	require.NoError(t, movs.Create(&entity.StockMovement{
		ID: uuid.New().String(), ProjectID: testProject, ProductID: harina.ID,
		Type: entity.MovementTypeIn, Quantity: decimal.NewFromInt(5),
		Date: now, IsBulk: true, BulkID: &bulkID, CreatedAt: now, CreatedBy: testUser,
	}))

	_, err := reverseUC.Reverse(context.Background(), testProject, testUser, bulkID)
	assert.ErrorIs(t, err, domain.ErrConcurrentModification)

	// Rollback completo: el grupo sigue reversible y el stock no cambió
	bulk, err := bulks.GetByID(bulkID)
	require.NoError(t, err)
	assert.True(t, bulk.CanBeReversed)
	assert.True(t, products.stock(harina.ID).Equal(decimal.NewFromInt(1)))
}
