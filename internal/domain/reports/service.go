package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"time"

	"manolos-gestion/internal/domain/charges"
)

// ChargeSource entrega los cobros del rango pedido.
type ChargeSource interface {
	ListByDateRange(ctx context.Context, from, to *time.Time) ([]charges.Charge, error)
}

// NameDirectory resuelve id->nombre en lote (un viaje por colección,
// no un par de lookups por fila).
type NameDirectory interface {
	NamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

type Service struct {
	charges  ChargeSource
	clients  NameDirectory
	services NameDirectory
}

func NewService(chargeSrc ChargeSource, clients, services NameDirectory) *Service {
	return &Service{
		charges:  chargeSrc,
		clients:  clients,
		services: services,
	}
}

// ExportCSV produce el reporte de cobros del rango [from, to] (extremos
// inclusivos, nil = abierto). Referencias rotas degradan a "-"; el monto
// es el total exacto (montoUnitario × cantidad).
func (s *Service) ExportCSV(ctx context.Context, from, to *time.Time) ([]byte, error) {
	rows, err := s.charges.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	clientIDs := make([]string, 0, len(rows))
	serviceIDs := make([]string, 0, len(rows))
	seenClients := map[string]struct{}{}
	seenServices := map[string]struct{}{}
	for _, c := range rows {
		if _, ok := seenClients[c.ClientID]; !ok {
			seenClients[c.ClientID] = struct{}{}
			clientIDs = append(clientIDs, c.ClientID)
		}
		if _, ok := seenServices[c.ServiceID]; !ok {
			seenServices[c.ServiceID] = struct{}{}
			serviceIDs = append(serviceIDs, c.ServiceID)
		}
	}

	clientNames, err := s.clients.NamesByIDs(ctx, clientIDs)
	if err != nil {
		return nil, err
	}
	serviceNames, err := s.services.NamesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	// Header fijo del reporte.
	_ = w.Write([]string{"Cliente", "Servicio", "Fecha", "Monto"})

	for _, c := range rows {
		_ = w.Write([]string{
			nameOr(clientNames, c.ClientID),
			nameOr(serviceNames, c.ServiceID),
			c.Date.Format(time.RFC3339),
			c.Total().String(),
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func nameOr(names map[string]string, id string) string {
	if n, ok := names[id]; ok && n != "" {
		return n
	}
	return "-"
}
