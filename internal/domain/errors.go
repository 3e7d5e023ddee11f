package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrUserNotFound           = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists     = errors.New("el email ya está registrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrUnauthorized           = errors.New("no autorizado")
	ErrForbidden              = errors.New("acceso denegado")
	ErrInvalidRecipe          = errors.New("receta inválida")
	ErrEmptyMenu              = errors.New("el menú no tiene recetas")
	ErrInsufficientStock      = errors.New("stock insuficiente")
	ErrNotReversible          = errors.New("el movimiento agrupado ya no es reversible")
	ErrConcurrentModification = errors.New("el stock cambió durante la operación")
)

// InsufficientStockError detalla qué productos no alcanzan para el consumo solicitado.
// Satisface errors.Is(err, ErrInsufficientStock) para que los handlers lo mapeen igual.
type InsufficientStockError struct {
	Products []InsufficientProduct
}

// InsufficientProduct identifica un producto sin stock suficiente y el faltante.
type InsufficientProduct struct {
	ProductID   string
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	names := make([]string, 0, len(e.Products))
	for _, p := range e.Products {
		names = append(names, p.ProductName)
	}
	return fmt.Sprintf("stock insuficiente para: %s", strings.Join(names, ", "))
}

// Is permite comparar con el sentinel ErrInsufficientStock.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
