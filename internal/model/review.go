package model

import "time"

// Review is a student testimonial. Only approved reviews are listed publicly.
type Review struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	University string    `json:"university"`
	Course     string    `json:"course"`
	Country    string    `json:"country"`
	ImageURL   string    `json:"imageUrl"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreateReviewRequest is the payload for creating a review.
// Rating is constrained to 1-5 stars.
type CreateReviewRequest struct {
	Name       string `json:"name" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment"`
	University string `json:"university"`
	Course     string `json:"course"`
	Country    string `json:"country"`
	ImageURL   string `json:"imageUrl"`
	IsApproved *bool  `json:"isApproved"`
}

// ReviewPatch is the payload for partially updating a review.
type ReviewPatch struct {
	Name       *string `json:"name"`
	Rating     *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment    *string `json:"comment"`
	University *string `json:"university"`
	Course     *string `json:"course"`
	Country    *string `json:"country"`
	ImageURL   *string `json:"imageUrl"`
	IsApproved *bool   `json:"isApproved"`
}

// NewReview builds a Review from a create request, applying defaults.
func NewReview(req CreateReviewRequest) Review {
	return Review{
		Name:       req.Name,
		Rating:     req.Rating,
		Comment:    req.Comment,
		University: req.University,
		Course:     req.Course,
		Country:    req.Country,
		ImageURL:   req.ImageURL,
		IsApproved: boolOrDefault(req.IsApproved, true),
	}
}
