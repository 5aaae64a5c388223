package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everestwc/everest-backend/internal/model"
)

const classColumns = `id, name, class_type, description, duration, schedule, price, image_url, is_active, created_at, updated_at`

// ClassRepository handles class data access.
type ClassRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

// List returns all active classes in insertion order.
func (r *ClassRepository) List(ctx context.Context) ([]model.Class, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+classColumns+` FROM classes WHERE is_active = TRUE ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Class
	for rows.Next() {
		var cl model.Class
		if err := scanClass(rows, &cl); err != nil {
			return nil, err
		}
		items = append(items, cl)
	}
	return items, rows.Err()
}

// Create inserts a new class and fills in the generated fields.
func (r *ClassRepository) Create(ctx context.Context, cl *model.Class) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO classes (name, class_type, description, duration, schedule, price, image_url, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		cl.Name, cl.Type, cl.Description, cl.Duration, cl.Schedule, cl.Price, cl.ImageURL, cl.IsActive,
	).Scan(&cl.ID, &cl.CreatedAt, &cl.UpdatedAt)
}

// Update merges the non-nil patch fields into the row and returns the result.
func (r *ClassRepository) Update(ctx context.Context, id string, p model.ClassPatch) (*model.Class, error) {
	cl := &model.Class{}
	err := scanClass(r.pool.QueryRow(ctx,
		`UPDATE classes SET
			name        = COALESCE($2, name),
			class_type  = COALESCE($3, class_type),
			description = COALESCE($4, description),
			duration    = COALESCE($5, duration),
			schedule    = COALESCE($6, schedule),
			price       = COALESCE($7, price),
			image_url   = COALESCE($8, image_url),
			is_active   = COALESCE($9, is_active),
			updated_at  = NOW()
		 WHERE id = $1
		 RETURNING `+classColumns,
		id, p.Name, p.Type, p.Description, p.Duration, p.Schedule, p.Price, p.ImageURL, p.IsActive,
	), cl)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cl, nil
}

// Delete hard-removes a class. Deleting a missing ID is a no-op.
func (r *ClassRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	return err
}

func scanClass(row pgx.Row, cl *model.Class) error {
	return row.Scan(&cl.ID, &cl.Name, &cl.Type, &cl.Description, &cl.Duration,
		&cl.Schedule, &cl.Price, &cl.ImageURL, &cl.IsActive, &cl.CreatedAt, &cl.UpdatedAt)
}
