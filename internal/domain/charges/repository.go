package charges

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, c Charge) error
	GetByID(ctx context.Context, id string) (Charge, error)
	List(ctx context.Context) ([]Charge, error)
	// ListByDateRange filtra por fecha inclusiva en ambos extremos;
	// from/to nil dejan el rango abierto por ese lado.
	ListByDateRange(ctx context.Context, from, to *time.Time) ([]Charge, error)
	// UpdateStatus devuelve ErrNotFound si ningún cobro coincidió.
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}
