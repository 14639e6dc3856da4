package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"manolos-gestion/internal/domain/charges"
)

type chargesRepo struct {
	mu   sync.RWMutex
	byID map[string]charges.Charge
}

func NewChargesRepo() charges.Repository {
	return &chargesRepo{
		byID: make(map[string]charges.Charge),
	}
}

func (r *chargesRepo) Create(ctx context.Context, c charges.Charge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("charge id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("charge already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *chargesRepo) GetByID(ctx context.Context, id string) (charges.Charge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return charges.Charge{}, charges.ErrNotFound
	}
	return c, nil
}

func (r *chargesRepo) List(ctx context.Context) ([]charges.Charge, error) {
	return r.ListByDateRange(ctx, nil, nil)
}

func (r *chargesRepo) ListByDateRange(ctx context.Context, from, to *time.Time) ([]charges.Charge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]charges.Charge, 0)
	for _, c := range r.byID {
		if from != nil && c.Date.Before(*from) {
			continue
		}
		if to != nil && c.Date.After(*to) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func (r *chargesRepo) UpdateStatus(ctx context.Context, id string, status charges.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, exists := r.byID[id]
	if !exists {
		return charges.ErrNotFound
	}
	c.Status = status
	r.byID[id] = c
	return nil
}

func (r *chargesRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return charges.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
