package reminders

import "context"

type Repository interface {
	Create(ctx context.Context, r Reminder) error
	GetByID(ctx context.Context, id string) (Reminder, error)
	List(ctx context.Context) ([]Reminder, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
