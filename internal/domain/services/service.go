package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("servicio no encontrado")
)

type Manager struct {
	repo Repository
	now  func() time.Time
}

func NewManager(repo Repository) *Manager {
	return &Manager{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name        string
	Description string
	Rate        decimal.Decimal
	Duration    string
	Active      *bool
}

func (m *Manager) Create(ctx context.Context, in CreateInput) (CatalogService, error) {
	if strings.TrimSpace(in.Name) == "" {
		return CatalogService{}, ErrInvalidInput
	}
	if in.Rate.IsNegative() {
		return CatalogService{}, ErrInvalidInput
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	s := CatalogService{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Rate:        in.Rate,
		Duration:    strings.TrimSpace(in.Duration),
		Active:      active,
		CreatedAt:   m.now(),
	}

	if err := m.repo.Create(ctx, s); err != nil {
		return CatalogService{}, err
	}
	return s, nil
}

func (m *Manager) GetByID(ctx context.Context, id string) (CatalogService, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return CatalogService{}, ErrNotFound
	}
	return m.repo.GetByID(ctx, id)
}

func (m *Manager) List(ctx context.Context) ([]CatalogService, error) {
	return m.repo.List(ctx)
}

type UpdateInput struct {
	Name        *string
	Description *string
	Rate        *decimal.Decimal
	Duration    *string
	Active      *bool
}

func (m *Manager) Update(ctx context.Context, id string, in UpdateInput) (CatalogService, error) {
	current, err := m.repo.GetByID(ctx, id)
	if err != nil {
		return CatalogService{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return CatalogService{}, ErrInvalidInput
		}
		current.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		current.Description = strings.TrimSpace(*in.Description)
	}
	if in.Rate != nil {
		if in.Rate.IsNegative() {
			return CatalogService{}, ErrInvalidInput
		}
		current.Rate = *in.Rate
	}
	if in.Duration != nil {
		current.Duration = strings.TrimSpace(*in.Duration)
	}
	if in.Active != nil {
		current.Active = *in.Active
	}

	if err := m.repo.Update(ctx, current); err != nil {
		return CatalogService{}, err
	}
	return current, nil
}

func (m *Manager) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return m.repo.Delete(ctx, id)
}

// Exists indica si el servicio referenciado existe (chequeo cruzado de cobros).
func (m *Manager) Exists(ctx context.Context, id string) (bool, error) {
	_, err := m.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// NameOf devuelve el nombre del servicio; ok=false si no existe.
func (m *Manager) NameOf(ctx context.Context, id string) (string, bool, error) {
	s, err := m.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return s.Name, true, nil
}

// NamesByIDs resuelve id->nombre en lote para el exportador de reportes.
func (m *Manager) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	items, err := m.repo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(items))
	for _, s := range items {
		out[s.ID] = s.Name
	}
	return out, nil
}
