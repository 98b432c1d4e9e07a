package dto

import (
	"github.com/yigit/coursehub/internal/app/models"
)

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Title       string `json:"title" example:"Intro"`
	Description string `json:"description" example:"Basics"`
	Level       string `json:"level" example:"BEGINNER" enums:"BEGINNER,INTERMEDIATE,ADVANCED"`
}

// UpdateCourseRequest represents a partial course update; omitted fields are left unchanged
type UpdateCourseRequest struct {
	Title       *string `json:"title,omitempty" example:"Intro to Go"`
	Description *string `json:"description,omitempty" example:"Basics of the language"`
	Level       *string `json:"level,omitempty" example:"ADVANCED" enums:"BEGINNER,INTERMEDIATE,ADVANCED"`
}

// CourseResponse is the course representation returned by the API
type CourseResponse struct {
	ID          string  `json:"id" example:"3f2b4c1e-9a8d-4e55-b0a1-2c7d9e8f6a10"`
	Title       string  `json:"title" example:"Intro"`
	Description string  `json:"description" example:"Basics"`
	Level       string  `json:"level" example:"BEGINNER"`
	CreatedAt   string  `json:"created_at" example:"2025-04-23T12:01:05.123456Z"`
	UpdatedAt   string  `json:"updated_at" example:"2025-04-23T12:01:05.123456Z"`
	DeletedAt   *string `json:"deleted_at" example:"null"`
}

// NewCourseResponse converts a course model for the API
func NewCourseResponse(c *models.Course) *CourseResponse {
	if c == nil {
		return nil
	}
	resp := &CourseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Level:       string(c.Level),
		CreatedAt:   formatTime(c.CreatedAt),
		UpdatedAt:   formatTime(c.UpdatedAt),
	}
	if c.DeletedAt != nil {
		deleted := formatTime(*c.DeletedAt)
		resp.DeletedAt = &deleted
	}
	return resp
}

// NewCourseListResponse converts a list of courses; never returns nil
func NewCourseListResponse(courses []*models.Course) []*CourseResponse {
	out := make([]*CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}
