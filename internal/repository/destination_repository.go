package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everestwc/everest-backend/internal/model"
)

const destinationColumns = `id, name, description, image_url, is_active, created_at, updated_at`

// DestinationRepository handles destination data access.
type DestinationRepository struct {
	pool *pgxpool.Pool
}

// NewDestinationRepository creates a new DestinationRepository.
func NewDestinationRepository(pool *pgxpool.Pool) *DestinationRepository {
	return &DestinationRepository{pool: pool}
}

// List returns all active destinations in insertion order.
func (r *DestinationRepository) List(ctx context.Context) ([]model.Destination, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+destinationColumns+` FROM destinations WHERE is_active = TRUE ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Destination
	for rows.Next() {
		var d model.Destination
		if err := scanDestination(rows, &d); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

// Create inserts a new destination and fills in the generated fields.
func (r *DestinationRepository) Create(ctx context.Context, d *model.Destination) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO destinations (name, description, image_url, is_active)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		d.Name, d.Description, d.ImageURL, d.IsActive,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

// Update merges the non-nil patch fields into the row and returns the result.
func (r *DestinationRepository) Update(ctx context.Context, id string, p model.DestinationPatch) (*model.Destination, error) {
	d := &model.Destination{}
	err := scanDestination(r.pool.QueryRow(ctx,
		`UPDATE destinations SET
			name        = COALESCE($2, name),
			description = COALESCE($3, description),
			image_url   = COALESCE($4, image_url),
			is_active   = COALESCE($5, is_active),
			updated_at  = NOW()
		 WHERE id = $1
		 RETURNING `+destinationColumns,
		id, p.Name, p.Description, p.ImageURL, p.IsActive,
	), d)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

// Delete hard-removes a destination. Deleting a missing ID is a no-op.
func (r *DestinationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM destinations WHERE id = $1`, id)
	return err
}

func scanDestination(row pgx.Row, d *model.Destination) error {
	return row.Scan(&d.ID, &d.Name, &d.Description, &d.ImageURL, &d.IsActive, &d.CreatedAt, &d.UpdatedAt)
}
