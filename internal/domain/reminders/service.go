package reminders

import (
	"context"
	"errors"
	"strings"
	"time"

	"manolos-gestion/internal/platform/logger"
	"manolos-gestion/internal/ports/mail"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrClientNotFound   = errors.New("Cliente no encontrado")
	ErrNotFound         = errors.New("recordatorio no encontrado")
	errMailerConfigured = errors.New("mailer no configurado")
)

// ClientDirectory resuelve el correo del cliente destinatario.
// ok=false => el cliente no existe.
type ClientDirectory interface {
	EmailOf(ctx context.Context, id string) (email string, ok bool, err error)
}

type Service struct {
	repo    Repository
	clients ClientDirectory
	mailer  mail.Mailer // puede ser nil: todo envío Email termina en fallo
	log     logger.Logger
	now     func() time.Time
}

func NewService(repo Repository, clients ClientDirectory, mailer mail.Mailer, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:    repo,
		clients: clients,
		mailer:  mailer,
		log:     log,
		now:     time.Now,
	}
}

type CreateInput struct {
	ClientID string
	Channel  Channel
	Date     *time.Time
	Subject  string
	Message  string
}

// Create persiste el recordatorio en pendiente y, si el canal es Email,
// intenta la entrega de inmediato y registra el desenlace como estado.
//
// El insert y el update de estado son dos escrituras independientes: un
// crash entre ambas deja el recordatorio en pendiente aunque el correo
// haya salido. No hay reintentos; cada entrega se intenta una sola vez.
func (s *Service) Create(ctx context.Context, in CreateInput) (Reminder, error) {
	if strings.TrimSpace(in.ClientID) == "" {
		return Reminder{}, ErrInvalidInput
	}
	if !in.Channel.IsValid() {
		return Reminder{}, ErrInvalidInput
	}

	email, ok, err := s.clients.EmailOf(ctx, in.ClientID)
	if err != nil {
		return Reminder{}, err
	}
	if !ok {
		return Reminder{}, ErrClientNotFound
	}

	now := s.now()

	date := now
	if in.Date != nil {
		date = *in.Date
	}
	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		subject = DefaultSubject
	}
	message := strings.TrimSpace(in.Message)
	if message == "" {
		message = DefaultMessage
	}

	rem := Reminder{
		ID:        uuid.NewString(),
		ClientID:  strings.TrimSpace(in.ClientID),
		Channel:   in.Channel,
		Date:      date,
		Subject:   subject,
		Message:   message,
		Status:    StatusPending,
		CreatedAt: now,
	}

	if err := s.repo.Create(ctx, rem); err != nil {
		return Reminder{}, err
	}

	if rem.Channel == ChannelEmail {
		rem.Status = s.dispatch(ctx, rem, email)
	}
	// WhatsApp: sin ruta de envío; queda en pendiente.

	return rem, nil
}

// dispatch intenta la entrega y persiste el estado resultante. El error de
// envío se absorbe: la creación ya reportó éxito con el ID nuevo.
func (s *Service) dispatch(ctx context.Context, rem Reminder, email string) Status {
	err := s.send(ctx, email, rem.Subject, rem.Message)

	status := StatusSent
	if err != nil {
		status = StatusFailed
		s.log.Warn("reminder email failed", map[string]any{
			"reminder_id": rem.ID,
			"client_id":   rem.ClientID,
			"error":       err.Error(),
		})
	} else {
		s.log.Info("reminder email sent", map[string]any{
			"reminder_id": rem.ID,
			"client_id":   rem.ClientID,
		})
	}

	if uerr := s.repo.UpdateStatus(ctx, rem.ID, status); uerr != nil {
		s.log.Error("reminder status update failed", map[string]any{
			"reminder_id": rem.ID,
			"error":       uerr.Error(),
		})
	}
	return status
}

func (s *Service) send(ctx context.Context, to, subject, text string) error {
	if s.mailer == nil {
		return errMailerConfigured
	}
	return s.mailer.Send(ctx, mail.Message{
		To:      to,
		Subject: subject,
		Text:    text,
	})
}

func (s *Service) GetByID(ctx context.Context, id string) (Reminder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Reminder{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Reminder, error) {
	return s.repo.List(ctx)
}
