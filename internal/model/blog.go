package model

import "time"

// Blog is an article on the public site. Uses isPublished instead of
// isActive as its visibility flag.
type Blog struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	ImageURL    string    `json:"imageUrl"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateBlogRequest is the payload for creating a blog post.
type CreateBlogRequest struct {
	Title       string `json:"title" binding:"required"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	Author      string `json:"author"`
	ImageURL    string `json:"imageUrl"`
	IsPublished *bool  `json:"isPublished"`
}

// BlogPatch is the payload for partially updating a blog post.
type BlogPatch struct {
	Title       *string `json:"title"`
	Excerpt     *string `json:"excerpt"`
	Content     *string `json:"content"`
	Author      *string `json:"author"`
	ImageURL    *string `json:"imageUrl"`
	IsPublished *bool   `json:"isPublished"`
}

// NewBlog builds a Blog from a create request, applying defaults.
func NewBlog(req CreateBlogRequest) Blog {
	return Blog{
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Author:      req.Author,
		ImageURL:    req.ImageURL,
		IsPublished: boolOrDefault(req.IsPublished, true),
	}
}
