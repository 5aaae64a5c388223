package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everestwc/everest-backend/internal/model"
)

const reviewColumns = `id, name, rating, comment, university, course, country, image_url, is_approved, created_at, updated_at`

// ReviewRepository handles review data access.
type ReviewRepository struct {
	pool *pgxpool.Pool
}

// NewReviewRepository creates a new ReviewRepository.
func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

// List returns all approved reviews, newest first.
func (r *ReviewRepository) List(ctx context.Context) ([]model.Review, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE is_approved = TRUE ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Review
	for rows.Next() {
		var rv model.Review
		if err := scanReview(rows, &rv); err != nil {
			return nil, err
		}
		items = append(items, rv)
	}
	return items, rows.Err()
}

// Create inserts a new review and fills in the generated fields.
func (r *ReviewRepository) Create(ctx context.Context, rv *model.Review) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO reviews (name, rating, comment, university, course, country, image_url, is_approved)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		rv.Name, rv.Rating, rv.Comment, rv.University, rv.Course, rv.Country, rv.ImageURL, rv.IsApproved,
	).Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt)
}

// Update merges the non-nil patch fields into the row and returns the result.
func (r *ReviewRepository) Update(ctx context.Context, id string, p model.ReviewPatch) (*model.Review, error) {
	rv := &model.Review{}
	err := scanReview(r.pool.QueryRow(ctx,
		`UPDATE reviews SET
			name        = COALESCE($2, name),
			rating      = COALESCE($3, rating),
			comment     = COALESCE($4, comment),
			university  = COALESCE($5, university),
			course      = COALESCE($6, course),
			country     = COALESCE($7, country),
			image_url   = COALESCE($8, image_url),
			is_approved = COALESCE($9, is_approved),
			updated_at  = NOW()
		 WHERE id = $1
		 RETURNING `+reviewColumns,
		id, p.Name, p.Rating, p.Comment, p.University, p.Course, p.Country, p.ImageURL, p.IsApproved,
	), rv)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

// Delete hard-removes a review. Deleting a missing ID is a no-op.
func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	return err
}

func scanReview(row pgx.Row, rv *model.Review) error {
	return row.Scan(&rv.ID, &rv.Name, &rv.Rating, &rv.Comment, &rv.University,
		&rv.Course, &rv.Country, &rv.ImageURL, &rv.IsApproved, &rv.CreatedAt, &rv.UpdatedAt)
}
