package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everestwc/everest-backend/internal/model"
)

const sliderColumns = `id, title, subtitle, image_url, link, display_order, is_active, created_at, updated_at`

// SliderRepository handles homepage slider data access.
type SliderRepository struct {
	pool *pgxpool.Pool
}

// NewSliderRepository creates a new SliderRepository.
func NewSliderRepository(pool *pgxpool.Pool) *SliderRepository {
	return &SliderRepository{pool: pool}
}

// List returns all active sliders ordered by display order, ascending.
func (r *SliderRepository) List(ctx context.Context) ([]model.Slider, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+sliderColumns+` FROM sliders WHERE is_active = TRUE ORDER BY display_order ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Slider
	for rows.Next() {
		var s model.Slider
		if err := scanSlider(rows, &s); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// Create inserts a new slider and fills in the generated fields.
func (r *SliderRepository) Create(ctx context.Context, s *model.Slider) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO sliders (title, subtitle, image_url, link, display_order, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		s.Title, s.Subtitle, s.ImageURL, s.Link, s.DisplayOrder, s.IsActive,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update merges the non-nil patch fields into the row and returns the result.
func (r *SliderRepository) Update(ctx context.Context, id string, p model.SliderPatch) (*model.Slider, error) {
	s := &model.Slider{}
	err := scanSlider(r.pool.QueryRow(ctx,
		`UPDATE sliders SET
			title         = COALESCE($2, title),
			subtitle      = COALESCE($3, subtitle),
			image_url     = COALESCE($4, image_url),
			link          = COALESCE($5, link),
			display_order = COALESCE($6, display_order),
			is_active     = COALESCE($7, is_active),
			updated_at    = NOW()
		 WHERE id = $1
		 RETURNING `+sliderColumns,
		id, p.Title, p.Subtitle, p.ImageURL, p.Link, p.DisplayOrder, p.IsActive,
	), s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// Delete hard-removes a slider. Deleting a missing ID is a no-op.
func (r *SliderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sliders WHERE id = $1`, id)
	return err
}

func scanSlider(row pgx.Row, s *model.Slider) error {
	return row.Scan(&s.ID, &s.Title, &s.Subtitle, &s.ImageURL, &s.Link,
		&s.DisplayOrder, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
}
