package postgres

import (
	"context"
	"database/sql"
	"strings"

	"manolos-gestion/internal/domain/reminders"
)

type RemindersRepo struct {
	db *sql.DB
}

func NewRemindersRepo(db *sql.DB) *RemindersRepo {
	return &RemindersRepo{db: db}
}

func (r *RemindersRepo) Create(ctx context.Context, rem reminders.Reminder) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO recordatorios (id, cliente_id, medio, fecha, asunto, mensaje, estado, creado_en)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		rem.ID,
		rem.ClientID,
		string(rem.Channel),
		rem.Date,
		rem.Subject,
		rem.Message,
		string(rem.Status),
		rem.CreatedAt,
	)
	return err
}

func (r *RemindersRepo) GetByID(ctx context.Context, id string) (reminders.Reminder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return reminders.Reminder{}, reminders.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, cliente_id, medio, fecha, asunto, mensaje, estado, creado_en
		FROM recordatorios
		WHERE id = $1
	`, id)

	rem, err := scanReminder(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return reminders.Reminder{}, reminders.ErrNotFound
		}
		return reminders.Reminder{}, err
	}
	return rem, nil
}

func (r *RemindersRepo) List(ctx context.Context) ([]reminders.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, cliente_id, medio, fecha, asunto, mensaje, estado, creado_en
		FROM recordatorios
		ORDER BY creado_en ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reminders.Reminder, 0)
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rem)
	}
	return out, rows.Err()
}

func (r *RemindersRepo) UpdateStatus(ctx context.Context, id string, status reminders.Status) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE recordatorios SET estado = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return reminders.ErrNotFound
	}
	return nil
}

func scanReminder(row rowScanner) (reminders.Reminder, error) {
	var rem reminders.Reminder
	var channel, status string
	err := row.Scan(&rem.ID, &rem.ClientID, &channel, &rem.Date, &rem.Subject, &rem.Message, &status, &rem.CreatedAt)
	if err != nil {
		return reminders.Reminder{}, err
	}
	rem.Channel = reminders.Channel(channel)
	rem.Status = reminders.Status(status)
	return rem, nil
}
