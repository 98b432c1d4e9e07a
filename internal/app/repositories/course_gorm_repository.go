package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
	"gorm.io/gorm"
)

// courseRecord is the gorm mapping of the courses table. Timestamps are set
// by the service, so gorm's automatic time tracking is switched off.
type courseRecord struct {
	ID          string         `gorm:"type:uuid;primaryKey"`
	Title       string         `gorm:"type:text;not null"`
	Description string         `gorm:"type:text;not null"`
	Level       string         `gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime:false"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (courseRecord) TableName() string { return coursesTable }

func newCourseRecord(c *models.Course) *courseRecord {
	return &courseRecord{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Level:       string(c.Level),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (r *courseRecord) toModel() *models.Course {
	c := &models.Course{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Level:       models.CourseLevel(r.Level),
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
	if r.DeletedAt.Valid {
		deleted := r.DeletedAt.Time.UTC()
		c.DeletedAt = &deleted
	}
	return c
}

// GormCourseRepository stores courses through gorm; the soft-delete filter is
// gorm's DeletedAt scope.
type GormCourseRepository struct {
	db *gorm.DB
}

// NewGormCourseRepository creates a new GormCourseRepository
func NewGormCourseRepository(db *gorm.DB) *GormCourseRepository {
	return &GormCourseRepository{db: db}
}

// AutoMigrate creates or updates the courses table
func (r *GormCourseRepository) AutoMigrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&courseRecord{}); err != nil {
		return apperrors.NewPersistenceError("migrate courses", err)
	}
	return nil
}

// Create inserts a new course row
func (r *GormCourseRepository) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	rec := newCourseRecord(course)
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		logger.Error().Err(err).
			Str("courseID", course.ID).
			Bool("duplicate", errors.Is(err, gorm.ErrDuplicatedKey)).
			Msg("Error creating course")
		return nil, apperrors.NewPersistenceError("insert course", err)
	}
	return rec.toModel(), nil
}

// FindAll returns every active course in insertion order
func (r *GormCourseRepository) FindAll(ctx context.Context) ([]*models.Course, error) {
	var recs []courseRecord
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Find(&recs).Error
	if err != nil {
		logger.Error().Err(err).Msg("Error listing courses")
		return nil, apperrors.NewPersistenceError("list courses", err)
	}

	courses := make([]*models.Course, 0, len(recs))
	for i := range recs {
		courses = append(courses, recs[i].toModel())
	}
	return courses, nil
}

// FindByID returns the active course with id or ErrCourseNotFound
func (r *GormCourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	var rec courseRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id).Msg("Error getting course")
		return nil, apperrors.NewPersistenceError("get course", err)
	}
	return rec.toModel(), nil
}

// Update applies patch to the active course with id
func (r *GormCourseRepository) Update(ctx context.Context, id string, patch models.CoursePatch, now time.Time) (*models.Course, error) {
	var rec courseRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).Take(&rec).Error; err != nil {
			return err
		}

		changes := map[string]interface{}{
			"updated_at": nextUpdatedAt(now, rec.UpdatedAt),
		}
		if patch.Title != nil {
			changes["title"] = *patch.Title
		}
		if patch.Description != nil {
			changes["description"] = *patch.Description
		}
		if patch.Level != nil {
			changes["level"] = string(*patch.Level)
		}

		if err := tx.Model(&rec).Updates(changes).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Take(&rec).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id).Msg("Error updating course")
		return nil, apperrors.NewPersistenceError("update course", err)
	}
	return rec.toModel(), nil
}

// SoftDelete marks the active course with id as deleted
func (r *GormCourseRepository) SoftDelete(ctx context.Context, id string, now time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&courseRecord{}).
		Where("id = ?", id).
		Update("deleted_at", now)
	if res.Error != nil {
		logger.Error().Err(res.Error).Str("courseID", id).Msg("Error deleting course")
		return false, apperrors.NewPersistenceError("delete course", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// nextUpdatedAt keeps updated_at strictly increasing when the clock has not
// moved past the stored value.
func nextUpdatedAt(now, prev time.Time) time.Time {
	if now.After(prev) {
		return now
	}
	return prev.Add(time.Microsecond)
}
