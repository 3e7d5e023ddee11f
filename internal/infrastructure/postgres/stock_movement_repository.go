package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catering-api/internal/domain/entity"
	"github.com/jhoicas/catering-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = "id, project_id, product_id, type, quantity, date, is_bulk, bulk_id, notes, created_at, created_by"

// Create persiste un movimiento de stock.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, project_id, product_id, type, quantity, date, is_bulk, bulk_id, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	createdBy := (*string)(nil)
	if movement.CreatedBy != "" {
		createdBy = &movement.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProjectID, movement.ProductID, movement.Type,
		movement.Quantity, movement.Date, movement.IsBulk, movement.BulkID,
		movement.Notes, movement.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	var createdBy *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProjectID, &m.ProductID, &m.Type, &m.Quantity, &m.Date,
		&m.IsBulk, &m.BulkID, &m.Notes, &m.CreatedAt, &createdBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	if createdBy != nil {
		m.CreatedBy = *createdBy
	}
	return &m, nil
}

// ListByBulk devuelve los movimientos del grupo en orden de inserción.
func (r *StockMovementRepo) ListByBulk(bulkID string) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + `
		FROM stock_movements WHERE bulk_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, bulkID)
	if err != nil {
		return nil, fmt.Errorf("list by bulk: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var createdBy *string
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.ProductID, &m.Type, &m.Quantity, &m.Date,
			&m.IsBulk, &m.BulkID, &m.Notes, &m.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListByProject lista movimientos del proyecto en un rango de fechas, con los
// datos de producto y de grupo necesarios para la vista agrupada. El filtro
// corta por fecha del movimiento individual, no por límites de grupo.
func (r *StockMovementRepo) ListByProject(projectID string, from, to *time.Time, limit, offset int) ([]repository.MovementWithProduct, error) {
	query := `
		SELECT m.id, m.project_id, m.product_id, m.type, m.quantity, m.date, m.is_bulk, m.bulk_id, m.notes, m.created_at, m.created_by,
		       p.name, p.unit, p.price,
		       COALESCE(b.notes, ''), COALESCE(b.can_be_reversed, false)
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		LEFT JOIN bulk_movements b ON b.id = m.bulk_id
		WHERE m.project_id = $1`
	args := []any{projectID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND m.date >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND m.date <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY m.date DESC, m.created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list by project: %w", err)
	}
	defer rows.Close()
	var list []repository.MovementWithProduct
	for rows.Next() {
		var row repository.MovementWithProduct
		var createdBy *string
		if err := rows.Scan(
			&row.Movement.ID, &row.Movement.ProjectID, &row.Movement.ProductID, &row.Movement.Type,
			&row.Movement.Quantity, &row.Movement.Date, &row.Movement.IsBulk, &row.Movement.BulkID,
			&row.Movement.Notes, &row.Movement.CreatedAt, &createdBy,
			&row.ProductName, &row.Unit, &row.UnitPrice,
			&row.BulkNotes, &row.CanBeReversed,
		); err != nil {
			return nil, fmt.Errorf("scan movement row: %w", err)
		}
		if createdBy != nil {
			row.Movement.CreatedBy = *createdBy
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
