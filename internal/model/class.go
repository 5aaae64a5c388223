package model

import "time"

// Class is a test-preparation or language class (IELTS, PTE, ...).
type Class struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	Schedule    string    `json:"schedule"`
	Price       string    `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateClassRequest is the payload for creating a class.
type CreateClassRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Schedule    string `json:"schedule"`
	Price       string `json:"price"`
	ImageURL    string `json:"imageUrl"`
	IsActive    *bool  `json:"isActive"`
}

// ClassPatch is the payload for partially updating a class.
type ClassPatch struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
	Duration    *string `json:"duration"`
	Schedule    *string `json:"schedule"`
	Price       *string `json:"price"`
	ImageURL    *string `json:"imageUrl"`
	IsActive    *bool   `json:"isActive"`
}

// NewClass builds a Class from a create request, applying defaults.
func NewClass(req CreateClassRequest) Class {
	return Class{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Duration:    req.Duration,
		Schedule:    req.Schedule,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsActive:    boolOrDefault(req.IsActive, true),
	}
}
