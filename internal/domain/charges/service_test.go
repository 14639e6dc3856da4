package charges

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Charge
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Charge{}}
}

func (r *testRepo) Create(ctx context.Context, c Charge) error {
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Charge, error) {
	c, ok := r.byID[id]
	if !ok {
		return Charge{}, ErrNotFound
	}
	return c, nil
}

func (r *testRepo) List(ctx context.Context) ([]Charge, error) {
	out := make([]Charge, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *testRepo) ListByDateRange(ctx context.Context, from, to *time.Time) ([]Charge, error) {
	out := make([]Charge, 0)
	for _, c := range r.byID {
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

func (r *testRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	c, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	c.Status = status
	r.byID[id] = c
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// testDirectory responde existencia desde un set fijo de IDs.
type testDirectory struct {
	ids map[string]bool
}

func (d *testDirectory) Exists(ctx context.Context, id string) (bool, error) {
	return d.ids[id], nil
}

func newService(repo *testRepo, clientIDs, serviceIDs []string) *Service {
	clients := &testDirectory{ids: map[string]bool{}}
	for _, id := range clientIDs {
		clients.ids[id] = true
	}
	services := &testDirectory{ids: map[string]bool{}}
	for _, id := range serviceIDs {
		services.ids[id] = true
	}
	svc := NewService(repo, clients, services)
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreate_DefaultsAndTotal(t *testing.T) {
	repo := newTestRepo()
	svc := newService(repo, []string{"c1"}, []string{"s1"})

	c, err := svc.Create(context.Background(), CreateInput{
		ClientID:   "c1",
		ServiceID:  "s1",
		UnitAmount: decimal.RequireFromString("15000.50"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if c.Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %d", c.Quantity)
	}
	if c.Status != StatusPending {
		t.Fatalf("expected default status pendiente, got %q", c.Status)
	}
	if !c.Date.Equal(svc.now()) {
		t.Fatalf("expected date defaulted to now, got %v", c.Date)
	}
	if got := c.Total().String(); got != "15000.5" {
		t.Fatalf("expected total 15000.5, got %s", got)
	}
}

func TestCreate_TotalIsExact(t *testing.T) {
	repo := newTestRepo()
	svc := newService(repo, []string{"c1"}, []string{"s1"})

	c, err := svc.Create(context.Background(), CreateInput{
		ClientID:   "c1",
		ServiceID:  "s1",
		Quantity:   3,
		UnitAmount: decimal.RequireFromString("0.10"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// 0.10 × 3 tiene que dar 0.3 exacto, sin drift binario.
	if !c.Total().Equal(decimal.RequireFromString("0.3")) {
		t.Fatalf("expected exact total 0.3, got %s", c.Total())
	}
}

func TestCreate_RejectsMissingReferences(t *testing.T) {
	repo := newTestRepo()
	svc := newService(repo, []string{"c1"}, []string{"s1"})

	if _, err := svc.Create(context.Background(), CreateInput{
		ClientID:   "ghost",
		ServiceID:  "s1",
		UnitAmount: decimal.NewFromInt(100),
	}); err != ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}

	if _, err := svc.Create(context.Background(), CreateInput{
		ClientID:   "c1",
		ServiceID:  "ghost",
		UnitAmount: decimal.NewFromInt(100),
	}); err != ErrServiceNotFound {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}

	if len(repo.byID) != 0 {
		t.Fatalf("expected nothing persisted, got %d charges", len(repo.byID))
	}
}

func TestCreate_RejectsNegativeAmountAndQuantity(t *testing.T) {
	svc := newService(newTestRepo(), []string{"c1"}, []string{"s1"})

	if _, err := svc.Create(context.Background(), CreateInput{
		ClientID:   "c1",
		ServiceID:  "s1",
		UnitAmount: decimal.NewFromInt(-5),
	}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for negative amount, got %v", err)
	}

	if _, err := svc.Create(context.Background(), CreateInput{
		ClientID:   "c1",
		ServiceID:  "s1",
		Quantity:   -1,
		UnitAmount: decimal.NewFromInt(5),
	}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for negative quantity, got %v", err)
	}
}

func TestCreate_RejectsUnknownStatus(t *testing.T) {
	svc := newService(newTestRepo(), []string{"c1"}, []string{"s1"})

	_, err := svc.Create(context.Background(), CreateInput{
		ClientID:   "c1",
		ServiceID:  "s1",
		UnitAmount: decimal.NewFromInt(100),
		Status:     Status("abonado"),
	})
	if err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := newTestRepo()
	svc := newService(repo, []string{"c1"}, []string{"s1"})

	c, err := svc.Create(context.Background(), CreateInput{
		ClientID:   "c1",
		ServiceID:  "s1",
		UnitAmount: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.UpdateStatus(context.Background(), c.ID, StatusPaid); err != nil {
		t.Fatalf("update status: %v", err)
	}
	got, _ := svc.GetByID(context.Background(), c.ID)
	if got.Status != StatusPaid {
		t.Fatalf("expected pagado, got %q", got.Status)
	}

	// El enum se valida antes de tocar el repo.
	if err := svc.UpdateStatus(context.Background(), c.ID, Status("abonado")); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	// ID inexistente => NotFound, no éxito silencioso.
	if err := svc.UpdateStatus(context.Background(), "ghost", StatusPaid); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_Missing(t *testing.T) {
	svc := newService(newTestRepo(), nil, nil)

	if err := svc.Delete(context.Background(), "ghost"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
