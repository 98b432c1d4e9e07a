package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/testutil"
)

var baseTime = time.Date(2025, 4, 23, 12, 0, 0, 0, time.UTC)

func newGormRepo(t *testing.T) *GormCourseRepository {
	t.Helper()
	repo := NewGormCourseRepository(testutil.NewGormDB(t))
	require.NoError(t, repo.AutoMigrate(context.Background()))
	return repo
}

func newCourse(title string, level models.CourseLevel, at time.Time) *models.Course {
	return &models.Course{
		ID:          uuid.NewString(),
		Title:       title,
		Description: title + " description",
		Level:       level,
		CreatedAt:   at,
		UpdatedAt:   at,
	}
}

func assertSameCourse(t *testing.T, want, got *models.Course) {
	t.Helper()
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Description, got.Description)
	assert.Equal(t, want.Level, got.Level)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "created_at %v != %v", want.CreatedAt, got.CreatedAt)
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt), "updated_at %v != %v", want.UpdatedAt, got.UpdatedAt)
	assert.Equal(t, want.DeletedAt == nil, got.DeletedAt == nil)
}

func TestGormCourseRepository_CreateAndFind(t *testing.T) {
	repo := newGormRepo(t)
	ctx := context.Background()

	in := newCourse("Intro", models.LevelBeginner, baseTime)
	created, err := repo.Create(ctx, in)
	require.NoError(t, err)
	assertSameCourse(t, in, created)
	assert.Nil(t, created.DeletedAt)

	got, err := repo.FindByID(ctx, in.ID)
	require.NoError(t, err)
	assertSameCourse(t, created, got)
}

func TestGormCourseRepository_CreateDuplicateID(t *testing.T) {
	repo := newGormRepo(t)
	ctx := context.Background()

	in := newCourse("Intro", models.LevelBeginner, baseTime)
	_, err := repo.Create(ctx, in)
	require.NoError(t, err)

	_, err = repo.Create(ctx, in)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
}

func TestGormCourseRepository_FindByIDNotFound(t *testing.T) {
	repo := newGormRepo(t)

	_, err := repo.FindByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrCourseNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrPersistence)
}

func TestGormCourseRepository_FindAll(t *testing.T) {
	repo := newGormRepo(t)
	ctx := context.Background()

	empty, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	first := newCourse("First", models.LevelBeginner, baseTime)
	second := newCourse("Second", models.LevelAdvanced, baseTime.Add(time.Second))
	_, err = repo.Create(ctx, second)
	require.NoError(t, err)
	_, err = repo.Create(ctx, first)
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}

func TestGormCourseRepository_UpdatePartial(t *testing.T) {
	repo := newGormRepo(t)
	ctx := context.Background()

	in := newCourse("Intro", models.LevelBeginner, baseTime)
	_, err := repo.Create(ctx, in)
	require.NoError(t, err)

	level := models.LevelAdvanced
	updated, err := repo.Update(ctx, in.ID, models.CoursePatch{Level: &level}, baseTime.Add(time.Minute))
	require.NoError(t, err)

	assert.Equal(t, in.Title, updated.Title)
	assert.Equal(t, in.Description, updated.Description)
	assert.Equal(t, models.LevelAdvanced, updated.Level)
	assert.True(t, updated.CreatedAt.Equal(in.CreatedAt))
	assert.True(t, updated.UpdatedAt.Equal(baseTime.Add(time.Minute)))

	got, err := repo.FindByID(ctx, in.ID)
	require.NoError(t, err)
	assertSameCourse(t, updated, got)
}

func TestGormCourseRepository_UpdateStrictlyIncreasesUpdatedAt(t *testing.T) {
	repo := newGormRepo(t)
	ctx := context.Background()

	in := newCourse("Intro", models.LevelBeginner, baseTime)
	_, err := repo.Create(ctx, in)
	require.NoError(t, err)

	title := "Renamed"
	// a clock that did not move, or moved backwards
	for _, now := range []time.Time{baseTime, baseTime.Add(-time.Hour)} {
		before, err := repo.FindByID(ctx, in.ID)
		require.NoError(t, err)

		updated, err := repo.Update(ctx, in.ID, models.CoursePatch{Title: &title}, now)
		require.NoError(t, err)
		assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
		assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
	}
}

func TestGormCourseRepository_UpdateNotFound(t *testing.T) {
	repo := newGormRepo(t)
	ctx := context.Background()

	title := "x"
	_, err := repo.Update(ctx, uuid.NewString(), models.CoursePatch{Title: &title}, baseTime)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestGormCourseRepository_SoftDelete(t *testing.T) {
	repo := newGormRepo(t)
	ctx := context.Background()

	keep := newCourse("Keep", models.LevelBeginner, baseTime)
	drop := newCourse("Drop", models.LevelIntermediate, baseTime.Add(time.Second))
	for _, c := range []*models.Course{keep, drop} {
		_, err := repo.Create(ctx, c)
		require.NoError(t, err)
	}

	deleted, err := repo.SoftDelete(ctx, drop.ID, baseTime.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, deleted)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, keep.ID, all[0].ID)

	_, err = repo.FindByID(ctx, drop.ID)
	assert.ErrorIs(t, err, ErrCourseNotFound)

	title := "Back"
	_, err = repo.Update(ctx, drop.ID, models.CoursePatch{Title: &title}, baseTime.Add(time.Hour))
	assert.ErrorIs(t, err, ErrCourseNotFound)

	// the row is still stored, with the first deletion time
	var rec courseRecord
	require.NoError(t, repo.db.Unscoped().Where("id = ?", drop.ID).Take(&rec).Error)
	require.True(t, rec.DeletedAt.Valid)
	assert.True(t, rec.DeletedAt.Time.Equal(baseTime.Add(time.Minute)))

	deleted, err = repo.SoftDelete(ctx, drop.ID, baseTime.Add(2*time.Minute))
	require.NoError(t, err)
	assert.False(t, deleted)
	require.NoError(t, repo.db.Unscoped().Where("id = ?", drop.ID).Take(&rec).Error)
	assert.True(t, rec.DeletedAt.Time.Equal(baseTime.Add(time.Minute)))

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGormCourseRepository_SoftDeleteUnknownID(t *testing.T) {
	repo := newGormRepo(t)
	deleted, err := repo.SoftDelete(context.Background(), uuid.NewString(), baseTime)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestNextUpdatedAt(t *testing.T) {
	assert.Equal(t, baseTime.Add(time.Second), nextUpdatedAt(baseTime.Add(time.Second), baseTime))
	assert.Equal(t, baseTime.Add(time.Microsecond), nextUpdatedAt(baseTime, baseTime))
	assert.Equal(t, baseTime.Add(time.Microsecond), nextUpdatedAt(baseTime.Add(-time.Hour), baseTime))
}
