package entity

import "time"

// BulkMovement agrupa los movimientos de stock de un consumo de menú para que
// se confirmen y reviertan como una sola transacción lógica.
//
// CanBeReversed arranca en true y pasa a false exactamente una vez, al generar
// la reversa. La reversa se registra como un BulkMovement nuevo (ReversesID
// apunta al original): los movimientos son append-only y la membresía del
// grupo original nunca se muta.
type BulkMovement struct {
	ID            string
	ProjectID     string
	Date          time.Time
	Type          string // in, out
	CanBeReversed bool
	ReversesID    *string // ID del grupo original cuando este grupo es una reversa
	Notes         string  // resumen: menú, invitados, costo total
	CreatedAt     time.Time
	CreatedBy     string // UserID
}
