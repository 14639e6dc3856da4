package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("mascota no encontrada")
	ErrClientNotFound = errors.New("Cliente no existe")
	ErrMaxPets        = errors.New("El cliente ya tiene el máximo de 7 mascotas")
)

// ClientDirectory resuelve existencia de clientes sin importar su módulo.
type ClientDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo    Repository
	clients ClientDirectory
	now     func() time.Time
}

func NewService(repo Repository, clients ClientDirectory) *Service {
	return &Service{
		repo:    repo,
		clients: clients,
		now:     time.Now,
	}
}

type CreateInput struct {
	ClientID string
	Name     string
	Species  string
	Breed    string
	Age      *int
	Weight   *float64
}

// Create exige que el cliente exista y respeta el tope por cliente.
// Si falla cualquiera de los dos chequeos, la mascota no se persiste.
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.ClientID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Species) == "" {
		return Pet{}, ErrInvalidInput
	}

	ok, err := s.clients.Exists(ctx, in.ClientID)
	if err != nil {
		return Pet{}, err
	}
	if !ok {
		return Pet{}, ErrClientNotFound
	}

	count, err := s.repo.CountByClient(ctx, in.ClientID)
	if err != nil {
		return Pet{}, err
	}
	if count >= MaxPerClient {
		return Pet{}, ErrMaxPets
	}

	p := Pet{
		ID:        uuid.NewString(),
		ClientID:  strings.TrimSpace(in.ClientID),
		Name:      strings.TrimSpace(in.Name),
		Species:   strings.TrimSpace(in.Species),
		Breed:     strings.TrimSpace(in.Breed),
		Age:       in.Age,
		Weight:    in.Weight,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByClient(ctx context.Context, clientID string) ([]Pet, error) {
	return s.repo.ListByClient(ctx, clientID)
}

type UpdateInput struct {
	Name    *string
	Species *string
	Breed   *string
	Age     *int
	Weight  *float64
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Pet{}, ErrInvalidInput
		}
		current.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		if strings.TrimSpace(*in.Species) == "" {
			return Pet{}, ErrInvalidInput
		}
		current.Species = strings.TrimSpace(*in.Species)
	}
	if in.Breed != nil {
		current.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Age != nil {
		current.Age = in.Age
	}
	if in.Weight != nil {
		current.Weight = in.Weight
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return Pet{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
