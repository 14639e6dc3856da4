package reminders

import (
	"context"
	"errors"
	"testing"

	"manolos-gestion/internal/ports/mail"
)

type testRepo struct {
	byID map[string]Reminder
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Reminder{}}
}

func (r *testRepo) Create(ctx context.Context, rem Reminder) error {
	r.byID[rem.ID] = rem
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Reminder, error) {
	rem, ok := r.byID[id]
	if !ok {
		return Reminder{}, ErrNotFound
	}
	return rem, nil
}

func (r *testRepo) List(ctx context.Context) ([]Reminder, error) {
	out := make([]Reminder, 0, len(r.byID))
	for _, rem := range r.byID {
		out = append(out, rem)
	}
	return out, nil
}

func (r *testRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	rem, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	rem.Status = status
	r.byID[id] = rem
	return nil
}

// testDirectory: id -> correo. Un cliente puede existir sin correo.
type testDirectory struct {
	emails map[string]string
}

func (d *testDirectory) EmailOf(ctx context.Context, id string) (string, bool, error) {
	email, ok := d.emails[id]
	return email, ok, nil
}

// testMailer cuenta envíos y puede fallar a demanda.
type testMailer struct {
	sent []mail.Message
	err  error
}

func (m *testMailer) Verify(ctx context.Context) error { return m.err }

func (m *testMailer) Send(ctx context.Context, msg mail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func TestCreate_EmailDelivered(t *testing.T) {
	repo := newTestRepo()
	mailer := &testMailer{}
	dir := &testDirectory{emails: map[string]string{"c1": "ana@example.com"}}
	svc := NewService(repo, dir, mailer, nil)

	rem, err := svc.Create(context.Background(), CreateInput{
		ClientID: "c1",
		Channel:  ChannelEmail,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if rem.Status != StatusSent {
		t.Fatalf("expected enviado, got %q", rem.Status)
	}
	stored, _ := repo.GetByID(context.Background(), rem.ID)
	if stored.Status != StatusSent {
		t.Fatalf("expected persisted enviado, got %q", stored.Status)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(mailer.sent))
	}
	msg := mailer.sent[0]
	if msg.To != "ana@example.com" {
		t.Fatalf("unexpected recipient %q", msg.To)
	}
	if msg.Subject != DefaultSubject {
		t.Fatalf("expected default subject, got %q", msg.Subject)
	}
	if msg.Text != DefaultMessage {
		t.Fatalf("expected default message, got %q", msg.Text)
	}
}

func TestCreate_EmailFailureEndsInFallo(t *testing.T) {
	repo := newTestRepo()
	mailer := &testMailer{err: errors.New("smtp down")}
	dir := &testDirectory{emails: map[string]string{"c1": "ana@example.com"}}
	svc := NewService(repo, dir, mailer, nil)

	rem, err := svc.Create(context.Background(), CreateInput{
		ClientID: "c1",
		Channel:  ChannelEmail,
	})
	// El error de envío se absorbe: la creación reporta éxito.
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rem.Status != StatusFailed {
		t.Fatalf("expected fallo, got %q", rem.Status)
	}
	stored, _ := repo.GetByID(context.Background(), rem.ID)
	if stored.Status != StatusFailed {
		t.Fatalf("expected persisted fallo, got %q", stored.Status)
	}
}

func TestCreate_NilMailerEndsInFallo(t *testing.T) {
	repo := newTestRepo()
	dir := &testDirectory{emails: map[string]string{"c1": "ana@example.com"}}
	svc := NewService(repo, dir, nil, nil)

	rem, err := svc.Create(context.Background(), CreateInput{
		ClientID: "c1",
		Channel:  ChannelEmail,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rem.Status != StatusFailed {
		t.Fatalf("expected fallo sin mailer, got %q", rem.Status)
	}
}

func TestCreate_WhatsAppStaysPending(t *testing.T) {
	repo := newTestRepo()
	mailer := &testMailer{}
	dir := &testDirectory{emails: map[string]string{"c1": "ana@example.com"}}
	svc := NewService(repo, dir, mailer, nil)

	rem, err := svc.Create(context.Background(), CreateInput{
		ClientID: "c1",
		Channel:  ChannelWhatsApp,
		Subject:  "Baño de Rocky",
		Message:  "Mañana a las 10",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if rem.Status != StatusPending {
		t.Fatalf("expected pendiente, got %q", rem.Status)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("expected no emails for WhatsApp, got %d", len(mailer.sent))
	}
	if rem.Subject != "Baño de Rocky" || rem.Message != "Mañana a las 10" {
		t.Fatalf("custom subject/message not kept: %q / %q", rem.Subject, rem.Message)
	}
}

func TestCreate_UnknownClient(t *testing.T) {
	repo := newTestRepo()
	dir := &testDirectory{emails: map[string]string{}}
	svc := NewService(repo, dir, &testMailer{}, nil)

	_, err := svc.Create(context.Background(), CreateInput{
		ClientID: "ghost",
		Channel:  ChannelEmail,
	})
	if err != ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected nothing persisted, got %d", len(repo.byID))
	}
}

func TestCreate_InvalidChannel(t *testing.T) {
	svc := NewService(newTestRepo(), &testDirectory{emails: map[string]string{"c1": "x@y.z"}}, nil, nil)

	_, err := svc.Create(context.Background(), CreateInput{
		ClientID: "c1",
		Channel:  Channel("Paloma"),
	})
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
