package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/app/validators"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// CourseService defines the interface for course operations
type CourseService interface {
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, id string) (*models.Course, error)
	UpdateCourse(ctx context.Context, id string, req dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string) error
}

// Clock returns the current time
type Clock func() time.Time

// SystemClock is UTC wall time at the precision the store keeps
func SystemClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo repositories.CourseRepository
	validator  *validators.CourseValidator
	now        Clock
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.CourseRepository, validator *validators.CourseValidator) CourseService {
	return newCourseService(courseRepo, validator, SystemClock)
}

func newCourseService(courseRepo repositories.CourseRepository, validator *validators.CourseValidator, now Clock) *courseServiceImpl {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		validator:  validator,
		now:        now,
	}
}

// CreateCourse validates req and stores a new active course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		return nil, err
	}

	level, _ := models.ParseCourseLevel(req.Level)
	now := s.now()
	course := &models.Course{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Level:       level,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("courseID", created.ID).Msg("Course created")
	return created, nil
}

// GetAllCourses returns every active course
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.FindAll(ctx)
}

// GetCourseByID returns the active course with id
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	courseID, ok := parseCourseID(id)
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return s.courseRepo.FindByID(ctx, courseID)
}

// UpdateCourse applies the fields present in req. An empty request returns
// the course unchanged.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id string, req dto.UpdateCourseRequest) (*models.Course, error) {
	if err := s.validator.ValidateUpdate(req); err != nil {
		return nil, err
	}

	courseID, ok := parseCourseID(id)
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}

	patch := toCoursePatch(req)
	if patch.IsEmpty() {
		return s.courseRepo.FindByID(ctx, courseID)
	}

	updated, err := s.courseRepo.Update(ctx, courseID, patch, s.now())
	if err != nil {
		return nil, err
	}

	logger.Info().Str("courseID", updated.ID).Msg("Course updated")
	return updated, nil
}

// DeleteCourse soft-deletes the course with id. Unknown ids are a no-op.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id string) error {
	courseID, ok := parseCourseID(id)
	if !ok {
		logger.Debug().Str("courseID", id).Msg("Delete skipped for malformed id")
		return nil
	}

	deleted, err := s.courseRepo.SoftDelete(ctx, courseID, s.now())
	if err != nil {
		return err
	}

	if deleted {
		logger.Info().Str("courseID", courseID).Msg("Course deleted")
	} else {
		logger.Debug().Str("courseID", courseID).Msg("Delete matched no active course")
	}
	return nil
}

// parseCourseID returns the canonical form of a UUID id
func parseCourseID(id string) (string, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

func toCoursePatch(req dto.UpdateCourseRequest) models.CoursePatch {
	patch := models.CoursePatch{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Level != nil {
		if level, ok := models.ParseCourseLevel(*req.Level); ok {
			patch.Level = &level
		}
	}
	return patch
}
