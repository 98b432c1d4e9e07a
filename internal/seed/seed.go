package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
)

// DefaultCourses are created on an empty catalogue
var DefaultCourses = []dto.CreateCourseRequest{
	{Title: "Intro", Description: "Basics", Level: "BEGINNER"},
	{Title: "Data Modeling", Description: "Tables, keys and constraints", Level: "INTERMEDIATE"},
	{Title: "Query Tuning", Description: "Plans, indexes and statistics", Level: "ADVANCED"},
}

// CreateDefaultData creates DefaultCourses when no active course exists.
// Failures of single courses are collected and returned together.
func CreateDefaultData(ctx context.Context, courseService services.CourseService, lgr zerolog.Logger) error {
	existing, err := courseService.GetAllCourses(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		lgr.Info().Int("courses", len(existing)).Msg("Courses already present, skipping seed")
		return nil
	}

	lgr.Info().Msg("Creating default courses...")
	var finalErr error
	for _, req := range DefaultCourses {
		course, err := courseService.CreateCourse(ctx, req)
		if err != nil {
			lgr.Error().Err(err).Str("title", req.Title).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Debug().Str("courseID", course.ID).Str("title", course.Title).Msg("Default course created")
	}
	return finalErr
}
