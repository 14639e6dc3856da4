package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"manolos-gestion/internal/domain/charges"

	"github.com/shopspring/decimal"
)

type testChargeSource struct {
	rows []charges.Charge
}

func (s *testChargeSource) ListByDateRange(ctx context.Context, from, to *time.Time) ([]charges.Charge, error) {
	out := make([]charges.Charge, 0)
	for _, c := range s.rows {
		if from != nil && c.Date.Before(*from) {
			continue
		}
		if to != nil && c.Date.After(*to) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

type testNames struct {
	names map[string]string
	calls int
}

func (d *testNames) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	d.calls++
	out := map[string]string{}
	for _, id := range ids {
		if n, ok := d.names[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestExportCSV(t *testing.T) {
	src := &testChargeSource{rows: []charges.Charge{
		{
			ID:         "ch1",
			ClientID:   "c1",
			ServiceID:  "s1",
			Date:       mustDate("2025-03-01"),
			Quantity:   2,
			UnitAmount: decimal.RequireFromString("15000"),
		},
		{
			ID:         "ch2",
			ClientID:   "ghost", // cliente borrado
			ServiceID:  "s1",
			Date:       mustDate("2025-03-05"),
			Quantity:   1,
			UnitAmount: decimal.RequireFromString("8000.50"),
		},
	}}
	clients := &testNames{names: map[string]string{"c1": "Ana"}}
	services := &testNames{names: map[string]string{"s1": "Baño completo"}}

	svc := NewService(src, clients, services)

	out, err := svc.ExportCSV(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}

	header := records[0]
	want := []string{"Cliente", "Servicio", "Fecha", "Monto"}
	for i := range want {
		if header[i] != want[i] {
			t.Fatalf("header[%d] = %q, want %q", i, header[i], want[i])
		}
	}

	if records[1][0] != "Ana" || records[1][1] != "Baño completo" {
		t.Fatalf("unexpected first row: %v", records[1])
	}
	if records[1][3] != "30000" {
		t.Fatalf("expected Monto 30000, got %q", records[1][3])
	}

	// Referencia rota degrada a "-", nunca rompe el export.
	if records[2][0] != "-" {
		t.Fatalf("expected '-' for deleted client, got %q", records[2][0])
	}
	if records[2][3] != "8000.5" {
		t.Fatalf("expected Monto 8000.5, got %q", records[2][3])
	}

	// Una sola resolución de nombres por colección.
	if clients.calls != 1 || services.calls != 1 {
		t.Fatalf("expected 1 batch per directory, got clients=%d services=%d", clients.calls, services.calls)
	}
}

func TestExportCSV_RangeInclusive(t *testing.T) {
	src := &testChargeSource{rows: []charges.Charge{
		{ID: "a", ClientID: "c1", ServiceID: "s1", Date: mustDate("2025-03-01"), Quantity: 1, UnitAmount: decimal.NewFromInt(100)},
		{ID: "b", ClientID: "c1", ServiceID: "s1", Date: mustDate("2025-03-10"), Quantity: 1, UnitAmount: decimal.NewFromInt(100)},
		{ID: "c", ClientID: "c1", ServiceID: "s1", Date: mustDate("2025-03-20"), Quantity: 1, UnitAmount: decimal.NewFromInt(100)},
	}}
	svc := NewService(src, &testNames{names: map[string]string{}}, &testNames{names: map[string]string{}})

	from := mustDate("2025-03-01")
	to := mustDate("2025-03-10")
	out, err := svc.ExportCSV(context.Background(), &from, &to)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	// Ambos extremos entran.
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
}

func TestExportCSV_Empty(t *testing.T) {
	svc := NewService(&testChargeSource{}, &testNames{names: map[string]string{}}, &testNames{names: map[string]string{}})

	out, err := svc.ExportCSV(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected header only, got %d rows", len(records))
	}
}
