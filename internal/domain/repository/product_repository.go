package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catering-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// El stock no se actualiza por Update: solo vía UpdateStock dentro de una
// transacción del libro de movimientos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); usar dentro de tx.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, quantity decimal.Decimal) error
	ListByProject(projectID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
