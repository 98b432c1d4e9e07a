package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidateCreate(t *testing.T) {
	v := NewCourseValidator()

	assert.NoError(t, v.ValidateCreate(dto.CreateCourseRequest{Title: "Intro", Description: "Basics", Level: "BEGINNER"}))
	assert.NoError(t, v.ValidateCreate(dto.CreateCourseRequest{Title: "Intro", Description: "Basics", Level: "AVANCE"}))

	err := v.ValidateCreate(dto.CreateCourseRequest{})
	assert.Equal(t, []string{"title", "description", "level"}, fieldsOf(t, err))

	err = v.ValidateCreate(dto.CreateCourseRequest{Title: "Intro", Description: " ", Level: "EXPERT"})
	assert.Equal(t, []string{"description", "level"}, fieldsOf(t, err))

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "level must be one of BEGINNER, INTERMEDIATE, ADVANCED", verr.Fields[1].Message)
}

func TestValidateUpdate(t *testing.T) {
	v := NewCourseValidator()

	assert.NoError(t, v.ValidateUpdate(dto.UpdateCourseRequest{}))
	assert.NoError(t, v.ValidateUpdate(dto.UpdateCourseRequest{Level: strPtr("ADVANCED")}))

	err := v.ValidateUpdate(dto.UpdateCourseRequest{Title: strPtr(""), Level: strPtr("nope")})
	assert.Equal(t, []string{"title", "level"}, fieldsOf(t, err))
}
