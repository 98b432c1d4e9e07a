package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// ErrCourseNotFound is returned when no active course matches an id.
var ErrCourseNotFound = apperrors.ErrCourseNotFound

// CourseRepository owns persistence of courses. Every read and update only
// sees active rows; deletion is always soft.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) (*models.Course, error)
	FindAll(ctx context.Context) ([]*models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	// Update applies the set fields of patch and moves updated_at to now, or
	// just past its previous value when now is not later.
	Update(ctx context.Context, id string, patch models.CoursePatch, now time.Time) (*models.Course, error)
	// SoftDelete stamps deleted_at and reports whether an active row matched;
	// missing or already deleted ids are a no-op.
	SoftDelete(ctx context.Context, id string, now time.Time) (bool, error)
}

const coursesTable = "courses"

var courseColumns = []string{"id", "title", "description", "level", "created_at", "updated_at", "deleted_at"}

// dbtx is the subset of *pgxpool.Pool (and pgx.Tx) the repository needs
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresCourseRepository handles course database operations over pgx
type PostgresCourseRepository struct {
	db dbtx
	sb squirrel.StatementBuilderType
}

// NewPostgresCourseRepository creates a new PostgresCourseRepository
func NewPostgresCourseRepository(db dbtx) *PostgresCourseRepository {
	return &PostgresCourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *PostgresCourseRepository) activeCourses() squirrel.SelectBuilder {
	return r.sb.Select(courseColumns...).
		From(coursesTable).
		Where(squirrel.Eq{"deleted_at": nil})
}

func (r *PostgresCourseRepository) insertQuery(c *models.Course) (string, []interface{}, error) {
	return r.sb.Insert(coursesTable).
		Columns(courseColumns[:6]...).
		Values(c.ID, c.Title, c.Description, string(c.Level), c.CreatedAt, c.UpdatedAt).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
}

func (r *PostgresCourseRepository) listQuery() (string, []interface{}, error) {
	return r.activeCourses().OrderBy("created_at ASC", "id ASC").ToSql()
}

func (r *PostgresCourseRepository) findQuery(id string) (string, []interface{}, error) {
	return r.activeCourses().Where(squirrel.Eq{"id": id}).Limit(1).ToSql()
}

func (r *PostgresCourseRepository) updateQuery(id string, patch models.CoursePatch, now time.Time) (string, []interface{}, error) {
	set := map[string]interface{}{
		"updated_at": squirrel.Expr("GREATEST(?::timestamptz, updated_at + INTERVAL '1 microsecond')", now),
	}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Level != nil {
		set["level"] = string(*patch.Level)
	}

	return r.sb.Update(coursesTable).
		SetMap(set).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
}

func (r *PostgresCourseRepository) softDeleteQuery(id string, now time.Time) (string, []interface{}, error) {
	return r.sb.Update(coursesTable).
		Set("deleted_at", now).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		ToSql()
}

// Create inserts a new course row and returns it as stored
func (r *PostgresCourseRepository) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	sql, args, err := r.insertQuery(course)
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return nil, apperrors.NewPersistenceError("build insert course", err)
	}

	created, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).
			Str("courseID", course.ID).
			Bool("uniqueViolation", dberrors.IsUniqueViolation(err)).
			Bool("checkViolation", dberrors.IsCheckViolation(err)).
			Str("constraint", dberrors.Constraint(err)).
			Msg("Error executing create course query")
		return nil, apperrors.NewPersistenceError("insert course", err)
	}
	return created, nil
}

// FindAll returns every active course in insertion order
func (r *PostgresCourseRepository) FindAll(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.listQuery()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, apperrors.NewPersistenceError("build list courses", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, apperrors.NewPersistenceError("list courses", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning course row")
			return nil, apperrors.NewPersistenceError("scan course", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course rows")
		return nil, apperrors.NewPersistenceError("iterate courses", err)
	}

	return courses, nil
}

// FindByID returns the active course with id or ErrCourseNotFound
func (r *PostgresCourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	sql, args, err := r.findQuery(id)
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course SQL")
		return nil, apperrors.NewPersistenceError("build get course", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id).Msg("Error scanning course row")
		return nil, apperrors.NewPersistenceError("get course", err)
	}
	return course, nil
}

// Update applies patch to the active course with id
func (r *PostgresCourseRepository) Update(ctx context.Context, id string, patch models.CoursePatch, now time.Time) (*models.Course, error) {
	sql, args, err := r.updateQuery(id, patch, now)
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return nil, apperrors.NewPersistenceError("build update course", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id).Msg("Error executing update course query")
		return nil, apperrors.NewPersistenceError("update course", err)
	}
	return course, nil
}

// SoftDelete marks the active course with id as deleted
func (r *PostgresCourseRepository) SoftDelete(ctx context.Context, id string, now time.Time) (bool, error) {
	sql, args, err := r.softDeleteQuery(id, now)
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete course SQL")
		return false, apperrors.NewPersistenceError("build delete course", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", id).Msg("Error executing delete course query")
		return false, apperrors.NewPersistenceError("delete course", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

func joinColumns() string {
	return strings.Join(courseColumns, ", ")
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var (
		c     models.Course
		level string
	)
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &level, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
		return nil, err
	}
	c.Level = models.CourseLevel(level)
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	if c.DeletedAt != nil {
		deleted := c.DeletedAt.UTC()
		c.DeletedAt = &deleted
	}
	return &c, nil
}
