package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
	ListByClient(ctx context.Context, clientID string) ([]Pet, error)
	CountByClient(ctx context.Context, clientID string) (int, error)
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
}
