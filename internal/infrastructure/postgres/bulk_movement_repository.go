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

var _ repository.BulkMovementRepository = (*BulkMovementRepo)(nil)

// BulkMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type BulkMovementRepo struct {
	q Querier
}

// NewBulkMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBulkMovementRepository(q Querier) *BulkMovementRepo {
	return &BulkMovementRepo{q: q}
}

const bulkColumns = "id, project_id, date, type, can_be_reversed, reverses_id, notes, created_at, created_by"

// Create persiste el grupo. El ID del grupo es llave primaria y de idempotencia:
// reintentar un commit con el mismo ID devuelve domain.ErrDuplicate sin escribir nada.
func (r *BulkMovementRepo) Create(bulk *entity.BulkMovement) error {
	query := `
		INSERT INTO bulk_movements (id, project_id, date, type, can_be_reversed, reverses_id, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	createdBy := (*string)(nil)
	if bulk.CreatedBy != "" {
		createdBy = &bulk.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		bulk.ID, bulk.ProjectID, bulk.Date, bulk.Type, bulk.CanBeReversed,
		bulk.ReversesID, bulk.Notes, bulk.CreatedAt, createdBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bulk movement: %w", err)
	}
	return nil
}

// GetByID obtiene un grupo por ID; nil si no existe.
func (r *BulkMovementRepo) GetByID(id string) (*entity.BulkMovement, error) {
	query := `SELECT ` + bulkColumns + ` FROM bulk_movements WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get bulk movement")
}

// GetForUpdate obtiene el grupo bloqueando la fila (SELECT FOR UPDATE).
// Dos reversas concurrentes del mismo grupo se serializan aquí: la segunda
// verá CanBeReversed = false al obtener el lock.
func (r *BulkMovementRepo) GetForUpdate(id string) (*entity.BulkMovement, error) {
	query := `SELECT ` + bulkColumns + ` FROM bulk_movements WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get bulk movement for update")
}

func (r *BulkMovementRepo) scanOne(row pgx.Row, op string) (*entity.BulkMovement, error) {
	var b entity.BulkMovement
	var createdBy *string
	err := row.Scan(
		&b.ID, &b.ProjectID, &b.Date, &b.Type, &b.CanBeReversed,
		&b.ReversesID, &b.Notes, &b.CreatedAt, &createdBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if createdBy != nil {
		b.CreatedBy = *createdBy
	}
	return &b, nil
}

// MarkReversed apaga CanBeReversed del grupo y deja registrado el grupo que lo revierte.
func (r *BulkMovementRepo) MarkReversed(id, reversalID string) error {
	query := `UPDATE bulk_movements SET can_be_reversed = false, reversed_by = $2 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, reversalID)
	if err != nil {
		return fmt.Errorf("mark bulk reversed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
