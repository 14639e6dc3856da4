package pets

import "time"

// Pet pertenece a exactamente un cliente (referencia débil por ID).
type Pet struct {
	ID       string
	ClientID string

	Name    string
	Species string
	Breed   string
	Age     *int
	Weight  *float64

	CreatedAt time.Time
}

// MaxPerClient es el tope de mascotas por cliente.
const MaxPerClient = 7
