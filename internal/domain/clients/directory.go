package clients

import (
	"context"
	"errors"
)

// Estos helpers exponen lecturas puntuales para otros módulos
// (pets/charges/reminders/reports) sin acoplarlos al repo de clientes.
// Se usan para evitar ciclos de imports entre módulos.

// Exists indica si el cliente referenciado existe.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// EmailOf devuelve el correo del cliente. ok=false cuando el cliente no existe;
// un cliente existente sin correo devuelve ("", true, nil).
func (s *Service) EmailOf(ctx context.Context, id string) (string, bool, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return c.Email, true, nil
}

// NameOf devuelve el nombre del cliente; ok=false si no existe.
func (s *Service) NameOf(ctx context.Context, id string) (string, bool, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return c.Name, true, nil
}

// NamesByIDs resuelve id->nombre en lote para el exportador de reportes.
func (s *Service) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	items, err := s.repo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(items))
	for _, c := range items {
		out[c.ID] = c.Name
	}
	return out, nil
}
