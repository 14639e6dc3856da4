package pets

import (
	"context"
	"fmt"
	"testing"
)

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) ListByClient(ctx context.Context, clientID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) CountByClient(ctx context.Context, clientID string) (int, error) {
	n := 0
	for _, p := range r.byID {
		if p.ClientID == clientID {
			n++
		}
	}
	return n, nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type testDirectory struct {
	ids map[string]bool
}

func (d *testDirectory) Exists(ctx context.Context, id string) (bool, error) {
	return d.ids[id], nil
}

func TestCreate_MaxPetsPerClient(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testDirectory{ids: map[string]bool{"c1": true}})

	// Las primeras 7 entran.
	for i := 0; i < MaxPerClient; i++ {
		if _, err := svc.Create(context.Background(), CreateInput{
			ClientID: "c1",
			Name:     fmt.Sprintf("Rocky %d", i),
			Species:  "perro",
		}); err != nil {
			t.Fatalf("pet %d: %v", i, err)
		}
	}

	// La octava no.
	_, err := svc.Create(context.Background(), CreateInput{
		ClientID: "c1",
		Name:     "Rocky 8",
		Species:  "perro",
	})
	if err != ErrMaxPets {
		t.Fatalf("expected ErrMaxPets, got %v", err)
	}

	n, _ := repo.CountByClient(context.Background(), "c1")
	if n != MaxPerClient {
		t.Fatalf("expected %d pets persisted, got %d", MaxPerClient, n)
	}
}

func TestCreate_UnknownClientNotPersisted(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testDirectory{ids: map[string]bool{}})

	_, err := svc.Create(context.Background(), CreateInput{
		ClientID: "ghost",
		Name:     "Rocky",
		Species:  "perro",
	})
	if err != ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected nothing persisted, got %d", len(repo.byID))
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testDirectory{ids: map[string]bool{"c1": true}})

	age := 3
	p, err := svc.Create(context.Background(), CreateInput{
		ClientID: "c1",
		Name:     "Rocky",
		Species:  "perro",
		Breed:    "criollo",
		Age:      &age,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Roco"
	got, err := svc.Update(context.Background(), p.ID, UpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if got.Name != "Roco" {
		t.Fatalf("expected name updated, got %q", got.Name)
	}
	// Lo no enviado se conserva.
	if got.Species != "perro" || got.Breed != "criollo" || got.Age == nil || *got.Age != 3 {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestListByClient(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testDirectory{ids: map[string]bool{"c1": true, "c2": true}})

	for _, cid := range []string{"c1", "c1", "c2"} {
		if _, err := svc.Create(context.Background(), CreateInput{
			ClientID: cid,
			Name:     "x",
			Species:  "gato",
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := svc.ListByClient(context.Background(), "c1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 pets for c1, got %d", len(got))
	}
}
