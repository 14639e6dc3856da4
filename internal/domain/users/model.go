package users

import "time"

// User es el operador del back-office. El rol hoy siempre es admin.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string

	CreatedAt time.Time
}
