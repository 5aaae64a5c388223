package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everestwc/everest-backend/internal/model"
)

const blogColumns = `id, title, excerpt, content, author, image_url, is_published, created_at, updated_at`

// BlogRepository handles blog data access.
type BlogRepository struct {
	pool *pgxpool.Pool
}

// NewBlogRepository creates a new BlogRepository.
func NewBlogRepository(pool *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{pool: pool}
}

// List returns all published blog posts, newest first.
func (r *BlogRepository) List(ctx context.Context) ([]model.Blog, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+blogColumns+` FROM blogs WHERE is_published = TRUE ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Blog
	for rows.Next() {
		var b model.Blog
		if err := scanBlog(rows, &b); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

// Create inserts a new blog post and fills in the generated fields.
func (r *BlogRepository) Create(ctx context.Context, b *model.Blog) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO blogs (title, excerpt, content, author, image_url, is_published)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		b.Title, b.Excerpt, b.Content, b.Author, b.ImageURL, b.IsPublished,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

// Update merges the non-nil patch fields into the row and returns the result.
func (r *BlogRepository) Update(ctx context.Context, id string, p model.BlogPatch) (*model.Blog, error) {
	b := &model.Blog{}
	err := scanBlog(r.pool.QueryRow(ctx,
		`UPDATE blogs SET
			title        = COALESCE($2, title),
			excerpt      = COALESCE($3, excerpt),
			content      = COALESCE($4, content),
			author       = COALESCE($5, author),
			image_url    = COALESCE($6, image_url),
			is_published = COALESCE($7, is_published),
			updated_at   = NOW()
		 WHERE id = $1
		 RETURNING `+blogColumns,
		id, p.Title, p.Excerpt, p.Content, p.Author, p.ImageURL, p.IsPublished,
	), b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// Delete hard-removes a blog post. Deleting a missing ID is a no-op.
func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	return err
}

func scanBlog(row pgx.Row, b *model.Blog) error {
	return row.Scan(&b.ID, &b.Title, &b.Excerpt, &b.Content, &b.Author,
		&b.ImageURL, &b.IsPublished, &b.CreatedAt, &b.UpdatedAt)
}
