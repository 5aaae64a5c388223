package model

import "time"

// Slider is a homepage hero slide. DisplayOrder drives the public sort,
// ascending.
type Slider struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	ImageURL     string    `json:"imageUrl"`
	Link         string    `json:"link"`
	DisplayOrder int       `json:"order"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateSliderRequest is the payload for creating a slider.
type CreateSliderRequest struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	ImageURL     string `json:"imageUrl" binding:"required"`
	Link         string `json:"link"`
	DisplayOrder int    `json:"order"`
	IsActive     *bool  `json:"isActive"`
}

// SliderPatch is the payload for partially updating a slider.
type SliderPatch struct {
	Title        *string `json:"title"`
	Subtitle     *string `json:"subtitle"`
	ImageURL     *string `json:"imageUrl"`
	Link         *string `json:"link"`
	DisplayOrder *int    `json:"order"`
	IsActive     *bool   `json:"isActive"`
}

// NewSlider builds a Slider from a create request, applying defaults.
func NewSlider(req CreateSliderRequest) Slider {
	return Slider{
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		ImageURL:     req.ImageURL,
		Link:         req.Link,
		DisplayOrder: req.DisplayOrder,
		IsActive:     boolOrDefault(req.IsActive, true),
	}
}
