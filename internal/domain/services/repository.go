package services

import "context"

type Repository interface {
	Create(ctx context.Context, s CatalogService) error
	GetByID(ctx context.Context, id string) (CatalogService, error)
	List(ctx context.Context) ([]CatalogService, error)
	// ListByIDs resuelve varios servicios en un solo viaje (export/reportes).
	ListByIDs(ctx context.Context, ids []string) ([]CatalogService, error)
	Update(ctx context.Context, s CatalogService) error
	Delete(ctx context.Context, id string) error
}
