package model

import "time"

// University is a partner institution shown on the public site.
type University struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Country     string    `json:"country"`
	City        string    `json:"city"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Ranking     string    `json:"ranking"`
	Website     string    `json:"website"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateUniversityRequest is the payload for creating a university.
type CreateUniversityRequest struct {
	Name        string `json:"name" binding:"required"`
	Country     string `json:"country" binding:"required"`
	City        string `json:"city"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Ranking     string `json:"ranking"`
	Website     string `json:"website"`
	IsActive    *bool  `json:"isActive"`
}

// UniversityPatch is the payload for partially updating a university.
// Only non-nil fields are applied.
type UniversityPatch struct {
	Name        *string `json:"name"`
	Country     *string `json:"country"`
	City        *string `json:"city"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Ranking     *string `json:"ranking"`
	Website     *string `json:"website"`
	IsActive    *bool   `json:"isActive"`
}

// NewUniversity builds a University from a create request, applying defaults.
func NewUniversity(req CreateUniversityRequest) University {
	return University{
		Name:        req.Name,
		Country:     req.Country,
		City:        req.City,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Ranking:     req.Ranking,
		Website:     req.Website,
		IsActive:    boolOrDefault(req.IsActive, true),
	}
}
