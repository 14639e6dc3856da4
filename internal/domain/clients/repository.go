package clients

import "context"

type Repository interface {
	Create(ctx context.Context, c Client) error
	GetByID(ctx context.Context, id string) (Client, error)
	List(ctx context.Context) ([]Client, error)
	// ListByIDs resuelve varios clientes en un solo viaje (export/reportes).
	// IDs ausentes simplemente no aparecen en el resultado.
	ListByIDs(ctx context.Context, ids []string) ([]Client, error)
	Update(ctx context.Context, c Client) error
	Delete(ctx context.Context, id string) error
}
