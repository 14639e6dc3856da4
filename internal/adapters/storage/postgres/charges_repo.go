package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"manolos-gestion/internal/domain/charges"
)

type ChargesRepo struct {
	db *sql.DB
}

func NewChargesRepo(db *sql.DB) *ChargesRepo {
	return &ChargesRepo{db: db}
}

func (r *ChargesRepo) Create(ctx context.Context, c charges.Charge) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cobros (id, cliente_id, servicio_id, fecha, cantidad, monto_unitario, estado, creado_en)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`, c.ID, c.ClientID, c.ServiceID, c.Date, c.Quantity, c.UnitAmount, string(c.Status), c.CreatedAt)
	return err
}

func (r *ChargesRepo) GetByID(ctx context.Context, id string) (charges.Charge, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return charges.Charge{}, charges.ErrNotFound
	}

	var c charges.Charge
	var status string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, cliente_id, servicio_id, fecha, cantidad, monto_unitario, estado, creado_en
		FROM cobros
		WHERE id = $1
	`, id).Scan(&c.ID, &c.ClientID, &c.ServiceID, &c.Date, &c.Quantity, &c.UnitAmount, &status, &c.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return charges.Charge{}, charges.ErrNotFound
		}
		return charges.Charge{}, err
	}
	c.Status = charges.Status(status)
	return c, nil
}

func (r *ChargesRepo) List(ctx context.Context) ([]charges.Charge, error) {
	return r.list(ctx, `
		SELECT id, cliente_id, servicio_id, fecha, cantidad, monto_unitario, estado, creado_en
		FROM cobros
		ORDER BY creado_en ASC
	`)
}

func (r *ChargesRepo) ListByDateRange(ctx context.Context, from, to *time.Time) ([]charges.Charge, error) {
	var conds []string
	var args []any
	if from != nil {
		args = append(args, *from)
		conds = append(conds, fmt.Sprintf("fecha >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conds = append(conds, fmt.Sprintf("fecha <= $%d", len(args)))
	}

	query := `
		SELECT id, cliente_id, servicio_id, fecha, cantidad, monto_unitario, estado, creado_en
		FROM cobros
	`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY fecha ASC"

	return r.list(ctx, query, args...)
}

func (r *ChargesRepo) UpdateStatus(ctx context.Context, id string, status charges.Status) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cobros SET estado = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return charges.ErrNotFound
	}
	return nil
}

func (r *ChargesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cobros WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return charges.ErrNotFound
	}
	return nil
}

func (r *ChargesRepo) list(ctx context.Context, query string, args ...any) ([]charges.Charge, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]charges.Charge, 0)
	for rows.Next() {
		var c charges.Charge
		var status string
		if err := rows.Scan(&c.ID, &c.ClientID, &c.ServiceID, &c.Date, &c.Quantity, &c.UnitAmount, &status, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Status = charges.Status(status)
		out = append(out, c)
	}
	return out, rows.Err()
}
