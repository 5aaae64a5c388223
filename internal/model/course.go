package model

import "time"

// Course is a study program offered through partner universities.
type Course struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Level       string    `json:"level"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Level       string `json:"level" binding:"required"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	IsActive    *bool  `json:"isActive"`
}

// CoursePatch is the payload for partially updating a course.
type CoursePatch struct {
	Name        *string `json:"name"`
	Level       *string `json:"level"`
	Duration    *string `json:"duration"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	IsActive    *bool   `json:"isActive"`
}

// NewCourse builds a Course from a create request, applying defaults.
func NewCourse(req CreateCourseRequest) Course {
	return Course{
		Name:        req.Name,
		Level:       req.Level,
		Duration:    req.Duration,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    boolOrDefault(req.IsActive, true),
	}
}
