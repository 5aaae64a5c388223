package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everestwc/everest-backend/internal/model"
)

const courseColumns = `id, name, level, duration, description, image_url, is_active, created_at, updated_at`

// CourseRepository handles course data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// List returns all active courses in insertion order.
func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE is_active = TRUE ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Course
	for rows.Next() {
		var course model.Course
		if err := scanCourse(rows, &course); err != nil {
			return nil, err
		}
		items = append(items, course)
	}
	return items, rows.Err()
}

// Create inserts a new course and fills in the generated fields.
func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO courses (name, level, duration, description, image_url, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		course.Name, course.Level, course.Duration, course.Description, course.ImageURL, course.IsActive,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
}

// Update merges the non-nil patch fields into the row and returns the result.
func (r *CourseRepository) Update(ctx context.Context, id string, p model.CoursePatch) (*model.Course, error) {
	course := &model.Course{}
	err := scanCourse(r.pool.QueryRow(ctx,
		`UPDATE courses SET
			name        = COALESCE($2, name),
			level       = COALESCE($3, level),
			duration    = COALESCE($4, duration),
			description = COALESCE($5, description),
			image_url   = COALESCE($6, image_url),
			is_active   = COALESCE($7, is_active),
			updated_at  = NOW()
		 WHERE id = $1
		 RETURNING `+courseColumns,
		id, p.Name, p.Level, p.Duration, p.Description, p.ImageURL, p.IsActive,
	), course)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return course, nil
}

// Delete hard-removes a course. Deleting a missing ID is a no-op.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	return err
}

func scanCourse(row pgx.Row, c *model.Course) error {
	return row.Scan(&c.ID, &c.Name, &c.Level, &c.Duration, &c.Description,
		&c.ImageURL, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
}
