package smtp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	mailport "manolos-gestion/internal/ports/mail"

	gomail "github.com/wneessen/go-mail"
)

var (
	ErrNotConfigured = errors.New("smtp host not configured")
)

// Config del transporte SMTP. Host es obligatorio; User vacío => sin auth.
type Config struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// Mailer implementa mail.Mailer sobre SMTP (wneessen/go-mail).
type Mailer struct {
	client *gomail.Client
	from   string
}

func New(cfg Config) (*Mailer, error) {
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		return nil, ErrNotConfigured
	}

	port := cfg.Port
	if port <= 0 {
		port = 587
	}

	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if strings.TrimSpace(cfg.User) != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.User),
			gomail.WithPassword(cfg.Pass),
		)
	}

	client, err := gomail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &Mailer{
		client: client,
		from:   strings.TrimSpace(cfg.From),
	}, nil
}

// Verify abre y cierra una conexión para comprobar credenciales/conectividad.
func (m *Mailer) Verify(ctx context.Context) error {
	if err := m.client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	return m.client.Close()
}

func (m *Mailer) Send(ctx context.Context, msg mailport.Message) error {
	mm := gomail.NewMsg()
	if err := mm.From(m.from); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := mm.To(msg.To); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	mm.Subject(msg.Subject)
	mm.SetBodyString(gomail.TypeTextPlain, msg.Text)

	if err := m.client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
