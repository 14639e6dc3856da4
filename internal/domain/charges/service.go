package charges

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidStatus   = errors.New("estado inválido")
	ErrNotFound        = errors.New("Cobro no encontrado")
	ErrClientNotFound  = errors.New("Cliente no existe")
	ErrServiceNotFound = errors.New("Servicio no existe")
)

// ClientDirectory / ServiceDirectory resuelven existencia de las referencias
// sin acoplar este módulo a los repos de clientes/servicios.
type ClientDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type ServiceDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo     Repository
	clients  ClientDirectory
	services ServiceDirectory
	now      func() time.Time
}

func NewService(repo Repository, clients ClientDirectory, services ServiceDirectory) *Service {
	return &Service{
		repo:     repo,
		clients:  clients,
		services: services,
		now:      time.Now,
	}
}

type CreateInput struct {
	ClientID   string
	ServiceID  string
	Date       *time.Time
	Quantity   int
	UnitAmount decimal.Decimal
	Status     Status
}

// Create valida forma y, a diferencia del comportamiento histórico,
// también verifica que cliente y servicio existan (mismo criterio que
// la creación de mascotas).
func (s *Service) Create(ctx context.Context, in CreateInput) (Charge, error) {
	if strings.TrimSpace(in.ClientID) == "" {
		return Charge{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.ServiceID) == "" {
		return Charge{}, ErrInvalidInput
	}
	if in.UnitAmount.IsNegative() {
		return Charge{}, ErrInvalidInput
	}
	if in.Quantity < 0 {
		return Charge{}, ErrInvalidInput
	}

	ok, err := s.clients.Exists(ctx, in.ClientID)
	if err != nil {
		return Charge{}, err
	}
	if !ok {
		return Charge{}, ErrClientNotFound
	}

	ok, err = s.services.Exists(ctx, in.ServiceID)
	if err != nil {
		return Charge{}, err
	}
	if !ok {
		return Charge{}, ErrServiceNotFound
	}

	now := s.now()

	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}

	status := in.Status
	if status == "" {
		status = StatusPending
	}
	if !status.IsValid() {
		return Charge{}, ErrInvalidStatus
	}

	date := now
	if in.Date != nil {
		date = *in.Date
	}

	c := Charge{
		ID:         uuid.NewString(),
		ClientID:   strings.TrimSpace(in.ClientID),
		ServiceID:  strings.TrimSpace(in.ServiceID),
		Date:       date,
		Quantity:   qty,
		UnitAmount: in.UnitAmount,
		Status:     status,
		CreatedAt:  now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Charge{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Charge, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Charge{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Charge, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByDateRange(ctx context.Context, from, to *time.Time) ([]Charge, error) {
	return s.repo.ListByDateRange(ctx, from, to)
}

// UpdateStatus rechaza estados fuera del enum y reporta NotFound cuando
// ningún cobro coincide (antes el update silencioso "exitoso" escondía ambos casos).
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
