package consumption_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catering-api/internal/domain"
	"github.com/jhoicas/catering-api/internal/domain/entity"
	"github.com/jhoicas/catering-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests del flujo de consumo. Implementan los
// mismos puertos que los adaptadores de PostgreSQL, incluida la semántica de
// ErrDuplicate sobre el ID del grupo y el rollback del TxRunner.
// ──────────────────────────────────────────────────────────────────────────────

const (
	testProject      = "proyecto-1"
	testOtherProject = "proyecto-2"
	testUser         = "usuario-1"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if _, ok := r.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

// GetByID devuelve una copia: los casos de uso nunca mutan productos leídos.
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	stored, ok := r.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Name = p.Name
	stored.Unit = p.Unit
	stored.Price = p.Price
	return nil
}

func (r *fakeProductRepo) UpdateStock(productID string, quantity decimal.Decimal) error {
	stored, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.StockQuantity = quantity
	return nil
}

func (r *fakeProductRepo) ListByProject(projectID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.ProjectID == projectID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) stock(id string) decimal.Decimal {
	return r.products[id].StockQuantity
}

type fakeRecipeRepo struct {
	recipes map[string]*entity.Recipe
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{recipes: make(map[string]*entity.Recipe)}
}

func (r *fakeRecipeRepo) Create(rec *entity.Recipe) error {
	r.recipes[rec.ID] = rec
	return nil
}

func (r *fakeRecipeRepo) GetByID(id string) (*entity.Recipe, error) {
	rec, ok := r.recipes[id]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (r *fakeRecipeRepo) ListByProject(projectID string, limit, offset int) ([]*entity.Recipe, error) {
	var out []*entity.Recipe
	for _, rec := range r.recipes {
		if rec.ProjectID == projectID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeRecipeRepo) Delete(id string) error {
	delete(r.recipes, id)
	return nil
}

type fakeMenuRepo struct {
	menus map[string]*entity.Menu
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{menus: make(map[string]*entity.Menu)}
}

func (r *fakeMenuRepo) Create(m *entity.Menu) error {
	r.menus[m.ID] = m
	return nil
}

func (r *fakeMenuRepo) GetByID(id string) (*entity.Menu, error) {
	m, ok := r.menus[id]
	if !ok {
		return nil, nil
	}
	return m, nil
}

func (r *fakeMenuRepo) ListByProject(projectID string, limit, offset int) ([]*entity.Menu, error) {
	var out []*entity.Menu
	for _, m := range r.menus {
		if m.ProjectID == projectID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMenuRepo) Delete(id string) error {
	delete(r.menus, id)
	return nil
}

type fakeBulkRepo struct {
	bulks map[string]*entity.BulkMovement
}

func newFakeBulkRepo() *fakeBulkRepo {
	return &fakeBulkRepo{bulks: make(map[string]*entity.BulkMovement)}
}

// Create replica la semántica de llave primaria: ID repetido es ErrDuplicate.
func (r *fakeBulkRepo) Create(b *entity.BulkMovement) error {
	if _, ok := r.bulks[b.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *b
	r.bulks[b.ID] = &cp
	return nil
}

func (r *fakeBulkRepo) GetByID(id string) (*entity.BulkMovement, error) {
	b, ok := r.bulks[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBulkRepo) GetForUpdate(id string) (*entity.BulkMovement, error) {
	return r.GetByID(id)
}

func (r *fakeBulkRepo) MarkReversed(id, reversalID string) error {
	b, ok := r.bulks[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.CanBeReversed = false
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{}
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) ListByBulk(bulkID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.BulkID != nil && *m.BulkID == bulkID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByProject(projectID string, from, to *time.Time, limit, offset int) ([]repository.MovementWithProduct, error) {
	var out []repository.MovementWithProduct
	for _, m := range r.movements {
		if m.ProjectID == projectID {
			out = append(out, repository.MovementWithProduct{Movement: *m})
		}
	}
	return out, nil
}

// fakeTxRunner emula la transacción: toma un snapshot del estado y lo restaura
// si fn falla, igual que el Rollback real.
type fakeTxRunner struct {
	bulks    *fakeBulkRepo
	movs     *fakeMovementRepo
	products *fakeProductRepo
}

func newFakeTxRunner(bulks *fakeBulkRepo, movs *fakeMovementRepo, products *fakeProductRepo) *fakeTxRunner {
	return &fakeTxRunner{bulks: bulks, movs: movs, products: products}
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	bulkRepo repository.BulkMovementRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	bulksBefore := make(map[string]*entity.BulkMovement, len(r.bulks.bulks))
	for id, b := range r.bulks.bulks {
		cp := *b
		bulksBefore[id] = &cp
	}
	movsBefore := make([]*entity.StockMovement, len(r.movs.movements))
	copy(movsBefore, r.movs.movements)
	productsBefore := make(map[string]*entity.Product, len(r.products.products))
	for id, p := range r.products.products {
		cp := *p
		productsBefore[id] = &cp
	}

	if err := fn(r.bulks, r.movs, r.products); err != nil {
		r.bulks.bulks = bulksBefore
		r.movs.movements = movsBefore
		r.products.products = productsBefore
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Constructores de fixtures
// ──────────────────────────────────────────────────────────────────────────────

func newProduct(projectID, name string, stock, price float64) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:            uuid.New().String(),
		ProjectID:     projectID,
		Name:          name,
		Unit:          "kg",
		Price:         decimal.NewFromFloat(price),
		StockQuantity: decimal.NewFromFloat(stock),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func newRecipe(projectID, name string, servingSize int, ingredients ...entity.RecipeIngredient) *entity.Recipe {
	now := time.Now()
	rec := &entity.Recipe{
		ID:          uuid.New().String(),
		ProjectID:   projectID,
		Name:        name,
		ServingSize: servingSize,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for i := range ingredients {
		ingredients[i].ID = uuid.New().String()
		ingredients[i].RecipeID = rec.ID
	}
	rec.Ingredients = ingredients
	return rec
}

func ingredient(productID string, qty float64) entity.RecipeIngredient {
	return entity.RecipeIngredient{ProductID: productID, Quantity: decimal.NewFromFloat(qty), Unit: "kg"}
}

func newMenu(projectID, name string, links ...entity.MenuRecipeLink) *entity.Menu {
	now := time.Now()
	m := &entity.Menu{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i := range links {
		links[i].ID = uuid.New().String()
		links[i].MenuID = m.ID
	}
	m.Recipes = links
	return m
}

func link(recipeID string, quantity int) entity.MenuRecipeLink {
	return entity.MenuRecipeLink{RecipeID: recipeID, Quantity: quantity}
}
