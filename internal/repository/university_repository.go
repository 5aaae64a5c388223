package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everestwc/everest-backend/internal/model"
)

const universityColumns = `id, name, country, city, description, image_url, ranking, website, is_active, created_at, updated_at`

// UniversityRepository handles university data access.
type UniversityRepository struct {
	pool *pgxpool.Pool
}

// NewUniversityRepository creates a new UniversityRepository.
func NewUniversityRepository(pool *pgxpool.Pool) *UniversityRepository {
	return &UniversityRepository{pool: pool}
}

// List returns all active universities in insertion order.
func (r *UniversityRepository) List(ctx context.Context) ([]model.University, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+universityColumns+` FROM universities WHERE is_active = TRUE ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.University
	for rows.Next() {
		var u model.University
		if err := scanUniversity(rows, &u); err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

// Create inserts a new university and fills in the generated fields.
func (r *UniversityRepository) Create(ctx context.Context, u *model.University) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO universities (name, country, city, description, image_url, ranking, website, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		u.Name, u.Country, u.City, u.Description, u.ImageURL, u.Ranking, u.Website, u.IsActive,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

// Update merges the non-nil patch fields into the row and returns the result.
// Returns ErrNotFound if no university has the given ID.
func (r *UniversityRepository) Update(ctx context.Context, id string, p model.UniversityPatch) (*model.University, error) {
	u := &model.University{}
	err := scanUniversity(r.pool.QueryRow(ctx,
		`UPDATE universities SET
			name        = COALESCE($2, name),
			country     = COALESCE($3, country),
			city        = COALESCE($4, city),
			description = COALESCE($5, description),
			image_url   = COALESCE($6, image_url),
			ranking     = COALESCE($7, ranking),
			website     = COALESCE($8, website),
			is_active   = COALESCE($9, is_active),
			updated_at  = NOW()
		 WHERE id = $1
		 RETURNING `+universityColumns,
		id, p.Name, p.Country, p.City, p.Description, p.ImageURL, p.Ranking, p.Website, p.IsActive,
	), u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// Delete hard-removes a university. Deleting a missing ID is a no-op.
func (r *UniversityRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM universities WHERE id = $1`, id)
	return err
}

func scanUniversity(row pgx.Row, u *model.University) error {
	return row.Scan(&u.ID, &u.Name, &u.Country, &u.City, &u.Description,
		&u.ImageURL, &u.Ranking, &u.Website, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
}
