package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"manolos-gestion/internal/domain/services"
)

type ServicesRepo struct {
	db *sql.DB
}

func NewServicesRepo(db *sql.DB) *ServicesRepo {
	return &ServicesRepo{db: db}
}

func (r *ServicesRepo) Create(ctx context.Context, s services.CatalogService) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO servicios (id, nombre, descripcion, tarifa, duracion, activo, creado_en)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, s.ID, s.Name, s.Description, s.Rate, s.Duration, s.Active, s.CreatedAt)
	return err
}

func (r *ServicesRepo) GetByID(ctx context.Context, id string) (services.CatalogService, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return services.CatalogService{}, services.ErrNotFound
	}

	var s services.CatalogService
	err := r.db.QueryRowContext(ctx, `
		SELECT id, nombre, descripcion, tarifa, duracion, activo, creado_en
		FROM servicios
		WHERE id = $1
	`, id).Scan(&s.ID, &s.Name, &s.Description, &s.Rate, &s.Duration, &s.Active, &s.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return services.CatalogService{}, services.ErrNotFound
		}
		return services.CatalogService{}, err
	}
	return s, nil
}

func (r *ServicesRepo) List(ctx context.Context) ([]services.CatalogService, error) {
	return r.list(ctx, `
		SELECT id, nombre, descripcion, tarifa, duracion, activo, creado_en
		FROM servicios
		ORDER BY creado_en ASC
	`)
}

func (r *ServicesRepo) ListByIDs(ctx context.Context, ids []string) ([]services.CatalogService, error) {
	if len(ids) == 0 {
		return []services.CatalogService{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	return r.list(ctx, fmt.Sprintf(`
		SELECT id, nombre, descripcion, tarifa, duracion, activo, creado_en
		FROM servicios
		WHERE id IN (%s)
	`, strings.Join(placeholders, ",")), args...)
}

func (r *ServicesRepo) Update(ctx context.Context, s services.CatalogService) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE servicios
		SET nombre = $2, descripcion = $3, tarifa = $4, duracion = $5, activo = $6
		WHERE id = $1
	`, s.ID, s.Name, s.Description, s.Rate, s.Duration, s.Active)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (r *ServicesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM servicios WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (r *ServicesRepo) list(ctx context.Context, query string, args ...any) ([]services.CatalogService, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]services.CatalogService, 0)
	for rows.Next() {
		var s services.CatalogService
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Rate, &s.Duration, &s.Active, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
