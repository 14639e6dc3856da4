package clients

import "time"

// Client es la entidad raíz: dueño de mascotas, destinatario de cobros
// y recordatorios. Las referencias hacia él son débiles (sin cascade).
type Client struct {
	ID      string
	Name    string
	Address string
	Email   string
	Phone   string

	CreatedAt time.Time
}
