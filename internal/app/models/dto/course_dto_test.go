package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

func TestNewCourseResponse(t *testing.T) {
	created := time.Date(2025, 4, 23, 12, 1, 5, 123456000, time.FixedZone("CEST", 2*3600))
	c := &models.Course{
		ID:          "3f2b4c1e-9a8d-4e55-b0a1-2c7d9e8f6a10",
		Title:       "Intro",
		Description: "Basics",
		Level:       models.LevelBeginner,
		CreatedAt:   created,
		UpdatedAt:   created,
	}

	resp := NewCourseResponse(c)
	require.NotNil(t, resp)
	assert.Equal(t, "2025-04-23T10:01:05.123456Z", resp.CreatedAt)
	assert.Equal(t, resp.CreatedAt, resp.UpdatedAt)
	assert.Nil(t, resp.DeletedAt)

	deleted := created.Add(time.Hour)
	c.DeletedAt = &deleted
	resp = NewCourseResponse(c)
	require.NotNil(t, resp.DeletedAt)
	assert.Equal(t, "2025-04-23T11:01:05.123456Z", *resp.DeletedAt)

	assert.Nil(t, NewCourseResponse(nil))
}

func TestNewCourseListResponse_NeverNil(t *testing.T) {
	list := NewCourseListResponse(nil)
	require.NotNil(t, list)

	b, err := json.Marshal(NewSuccessEnvelope("All courses", list))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"success","message":"All courses","data":[]}`, string(b))
}

func TestEnvelopeJSON(t *testing.T) {
	b, err := json.Marshal(NewErrorEnvelope("Course not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","message":"Course not found","data":null}`, string(b))

	env := NewErrorEnvelope("Validation failed").WithErrors([]apperrors.FieldError{
		{Field: "title", Message: "title is required"},
	})
	b, err = json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"status":"error","message":"Validation failed","data":null,"errors":[{"field":"title","message":"title is required"}]}`,
		string(b))
}
