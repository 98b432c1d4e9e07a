package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCourseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want CourseLevel
		ok   bool
	}{
		{"BEGINNER", LevelBeginner, true},
		{"intermediate", LevelIntermediate, true},
		{" ADVANCED ", LevelAdvanced, true},
		{"DEBUTANT", LevelBeginner, true},
		{"INTERMEDIAIRE", LevelIntermediate, true},
		{"avance", LevelAdvanced, true},
		{"EXPERT", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseCourseLevel(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
	assert.Equal(t, "AVANCE", LevelAdvanced.Label())
}

func TestCoursePatchIsEmpty(t *testing.T) {
	assert.True(t, CoursePatch{}.IsEmpty())

	level := LevelAdvanced
	assert.False(t, CoursePatch{Level: &level}.IsEmpty())
}
