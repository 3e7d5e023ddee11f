package consumption

import "github.com/shopspring/decimal"

// ServingMultiplier implementa el escalado por invitados (servicio de dominio).
// Multiplicador = Invitados / TamañoPorción, con valor real (no se trunca):
// una receta para 4 servida a 6 invitados escala por 1.5.
func ServingMultiplier(guestCount, servingSize int) decimal.Decimal {
	if servingSize <= 0 || guestCount <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(guestCount)).Div(decimal.NewFromInt(int64(servingSize)))
}

// ScaledRequirement calcula la cantidad necesaria de un insumo:
// Necesario = CantidadPorPorción * TandasEnMenú * Multiplicador.
func ScaledRequirement(qtyPerServing decimal.Decimal, menuQty int, multiplier decimal.Decimal) decimal.Decimal {
	return qtyPerServing.Mul(decimal.NewFromInt(int64(menuQty))).Mul(multiplier)
}
