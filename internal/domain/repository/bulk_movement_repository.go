package repository

import "github.com/jhoicas/catering-api/internal/domain/entity"

// BulkMovementRepository define el puerto de persistencia para grupos de movimientos.
// Create debe fallar con domain.ErrDuplicate si el ID ya existe: el ID del
// grupo actúa como llave de idempotencia del commit.
type BulkMovementRepository interface {
	Create(bulk *entity.BulkMovement) error
	GetByID(id string) (*entity.BulkMovement, error)
	// GetForUpdate bloquea la fila del grupo (SELECT FOR UPDATE); usar dentro de tx
	// para serializar reversas concurrentes del mismo grupo.
	GetForUpdate(id string) (*entity.BulkMovement, error)
	// MarkReversed apaga CanBeReversed del grupo original y registra qué grupo lo revierte.
	MarkReversed(id, reversalID string) error
}
