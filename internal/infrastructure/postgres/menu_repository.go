package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catering-api/internal/domain"
	"github.com/jhoicas/catering-api/internal/domain/entity"
	"github.com/jhoicas/catering-api/internal/domain/repository"
)

var _ repository.MenuRepository = (*MenuRepo)(nil)

// MenuRepo implementación del puerto MenuRepository sobre PostgreSQL (usable con pool o tx).
type MenuRepo struct {
	q Querier
}

// NewMenuRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMenuRepository(q Querier) *MenuRepo {
	return &MenuRepo{q: q}
}

// Create persiste el menú y sus vínculos a recetas.
func (r *MenuRepo) Create(menu *entity.Menu) error {
	query := `
		INSERT INTO menus (id, project_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		menu.ID, menu.ProjectID, menu.Name, menu.CreatedAt, menu.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert menu: %w", err)
	}
	for i, link := range menu.Recipes {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO menu_recipes (id, menu_id, recipe_id, quantity, position)
			VALUES ($1, $2, $3, $4, $5)`,
			link.ID, menu.ID, link.RecipeID, link.Quantity, i,
		)
		if err != nil {
			return fmt.Errorf("insert menu recipe link: %w", err)
		}
	}
	return nil
}

// GetByID obtiene el menú con sus vínculos en orden; nil si no existe.
func (r *MenuRepo) GetByID(id string) (*entity.Menu, error) {
	query := `
		SELECT id, project_id, name, created_at, updated_at
		FROM menus WHERE id = $1`
	var m entity.Menu
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProjectID, &m.Name, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu: %w", err)
	}

	rows, err := r.q.Query(context.Background(), `
		SELECT id, menu_id, recipe_id, quantity
		FROM menu_recipes WHERE menu_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("list menu recipes: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var link entity.MenuRecipeLink
		if err := rows.Scan(&link.ID, &link.MenuID, &link.RecipeID, &link.Quantity); err != nil {
			return nil, fmt.Errorf("scan menu recipe link: %w", err)
		}
		m.Recipes = append(m.Recipes, link)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByProject lista menús del proyecto (sin vínculos) con paginación.
func (r *MenuRepo) ListByProject(projectID string, limit, offset int) ([]*entity.Menu, error) {
	query := `
		SELECT id, project_id, name, created_at, updated_at
		FROM menus WHERE project_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, projectID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	defer rows.Close()
	var list []*entity.Menu
	for rows.Next() {
		var m entity.Menu
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.Name, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan menu: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina el menú y sus vínculos (ON DELETE CASCADE en menu_recipes).
func (r *MenuRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM menus WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu: %w", err)
	}
	return nil
}
