package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/app/validators"
	"github.com/yigit/coursehub/internal/testutil"
)

func newService(t *testing.T) services.CourseService {
	t.Helper()
	repo := repositories.NewGormCourseRepository(testutil.NewGormDB(t))
	require.NoError(t, repo.AutoMigrate(context.Background()))
	return services.NewCourseService(repo, validators.NewCourseValidator())
}

func TestCreateDefaultData(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	require.NoError(t, CreateDefaultData(ctx, svc, zerolog.Nop()))
	courses, err := svc.GetAllCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, len(DefaultCourses))
	for i, c := range courses {
		assert.Equal(t, DefaultCourses[i].Title, c.Title)
	}

	// a second run leaves the catalogue alone
	require.NoError(t, CreateDefaultData(ctx, svc, zerolog.Nop()))
	courses, err = svc.GetAllCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, len(DefaultCourses))
}
