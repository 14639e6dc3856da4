package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"manolos-gestion/internal/domain/services"
)

type servicesRepo struct {
	mu   sync.RWMutex
	byID map[string]services.CatalogService
}

func NewServicesRepo() services.Repository {
	return &servicesRepo{
		byID: make(map[string]services.CatalogService),
	}
}

func (r *servicesRepo) Create(ctx context.Context, s services.CatalogService) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("service id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("service already exists")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *servicesRepo) GetByID(ctx context.Context, id string) (services.CatalogService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return services.CatalogService{}, services.ErrNotFound
	}
	return s, nil
}

func (r *servicesRepo) List(ctx context.Context) ([]services.CatalogService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]services.CatalogService, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *servicesRepo) ListByIDs(ctx context.Context, ids []string) ([]services.CatalogService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]services.CatalogService, 0, len(ids))
	for _, id := range ids {
		if s, ok := r.byID[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *servicesRepo) Update(ctx context.Context, s services.CatalogService) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; !exists {
		return services.ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *servicesRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return services.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
