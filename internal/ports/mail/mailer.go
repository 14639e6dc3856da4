package mail

import "context"

// Message es un correo de texto plano.
type Message struct {
	To      string
	Subject string
	Text    string
}

// Mailer es el transporte de correo saliente.
// Verify comprueba conectividad; Send intenta una entrega (sin reintentos).
type Mailer interface {
	Verify(ctx context.Context) error
	Send(ctx context.Context, msg Message) error
}
