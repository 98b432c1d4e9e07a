package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMatchesSentinel(t *testing.T) {
	verr := NewValidationError().
		Add("title", "title is required").
		Add("level", "level must be one of BEGINNER, INTERMEDIATE, ADVANCED")

	wrapped := fmt.Errorf("create course: %w", verr)

	assert.True(t, errors.Is(wrapped, ErrValidationFailed))
	assert.False(t, errors.Is(wrapped, ErrPersistence))

	var target *ValidationError
	assert.True(t, errors.As(wrapped, &target))
	assert.Len(t, target.Fields, 2)
	assert.Contains(t, verr.Error(), "title is required")
}

func TestPersistenceErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewPersistenceError("insert course", cause)

	assert.True(t, errors.Is(err, ErrPersistence))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrResourceNotFound))
	assert.Equal(t, "insert course: persistence failure: connection reset", err.Error())
}

func TestCourseNotFoundIsResourceNotFound(t *testing.T) {
	assert.True(t, errors.Is(ErrCourseNotFound, ErrResourceNotFound))
	assert.False(t, errors.Is(ErrCourseNotFound, ErrPersistence))
}

func TestValidationErrorMerge(t *testing.T) {
	verr := NewValidationError().Add("title", "title must be a string")

	rules := NewValidationError().
		Add("title", "title is required").
		Add("level", "level must be one of BEGINNER, INTERMEDIATE, ADVANCED")

	verr.Merge(nil).Merge(errors.New("unrelated")).Merge(fmt.Errorf("wrapped: %w", rules))

	assert.Equal(t, []FieldError{
		{Field: "title", Message: "title must be a string"},
		{Field: "level", Message: "level must be one of BEGINNER, INTERMEDIATE, ADVANCED"},
	}, verr.Fields)
	assert.True(t, verr.HasField("level"))
	assert.False(t, verr.HasField("description"))
}
