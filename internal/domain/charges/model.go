package charges

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de pago de un cobro. Cualquier estado puede seguir a cualquier otro;
// no hay máquina de estados.
type Status string

const (
	StatusPending Status = "pendiente"
	StatusPaid    Status = "pagado"
	StatusOverdue Status = "vencido"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// Charge es un ítem facturable: cliente + servicio + cantidad a una
// tarifa unitaria. Referencias débiles por ID (sin cascade).
type Charge struct {
	ID        string
	ClientID  string
	ServiceID string

	Date       time.Time
	Quantity   int
	UnitAmount decimal.Decimal
	Status     Status

	CreatedAt time.Time
}

// Total es montoUnitario × cantidad, exacto (decimal, sin drift de redondeo).
func (c Charge) Total() decimal.Decimal {
	return c.UnitAmount.Mul(decimal.NewFromInt(int64(c.Quantity)))
}
