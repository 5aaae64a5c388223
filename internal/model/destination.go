package model

import "time"

// Destination is a study-abroad country or region page.
type Destination struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateDestinationRequest is the payload for creating a destination.
type CreateDestinationRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	IsActive    *bool  `json:"isActive"`
}

// DestinationPatch is the payload for partially updating a destination.
type DestinationPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	IsActive    *bool   `json:"isActive"`
}

// NewDestination builds a Destination from a create request, applying defaults.
func NewDestination(req CreateDestinationRequest) Destination {
	return Destination{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    boolOrDefault(req.IsActive, true),
	}
}
