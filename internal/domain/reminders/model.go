package reminders

import "time"

// Channel de entrega del recordatorio.
type Channel string

const (
	ChannelWhatsApp Channel = "WhatsApp"
	ChannelEmail    Channel = "Email"
)

func (c Channel) IsValid() bool {
	return c == ChannelWhatsApp || c == ChannelEmail
}

// Status de entrega. WhatsApp no tiene ruta de envío todavía, así que
// esos recordatorios quedan en pendiente.
type Status string

const (
	StatusPending Status = "pendiente"
	StatusSent    Status = "enviado"
	StatusFailed  Status = "fallo"
)

// Reminder referencia a un cliente (débil) y registra el resultado
// del intento de entrega como transición de estado.
type Reminder struct {
	ID       string
	ClientID string

	Channel Channel
	Date    time.Time
	Subject string
	Message string
	Status  Status

	CreatedAt time.Time
}

const (
	DefaultSubject = "Recordatorio de Manolo's Gestión"
	DefaultMessage = "Hola, este es un recordatorio"
)
