package models

import (
	"strings"
	"time"
)

// CourseLevel is the difficulty of a course
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "BEGINNER"
	LevelIntermediate CourseLevel = "INTERMEDIATE"
	LevelAdvanced     CourseLevel = "ADVANCED"
)

// CourseLevels lists the accepted levels in display order
var CourseLevels = []CourseLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}

// localized labels accepted on input
var levelLabels = map[CourseLevel]string{
	LevelBeginner:     "DEBUTANT",
	LevelIntermediate: "INTERMEDIAIRE",
	LevelAdvanced:     "AVANCE",
}

// ParseCourseLevel resolves a canonical level or its localized label.
func ParseCourseLevel(s string) (CourseLevel, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, level := range CourseLevels {
		if s == string(level) || s == level.Label() {
			return level, true
		}
	}
	return "", false
}

// Label returns the localized label of the level
func (l CourseLevel) Label() string {
	return levelLabels[l]
}

// Course is the single resource of the service.
type Course struct {
	ID          string      `json:"id" db:"id"`
	Title       string      `json:"title" db:"title"`
	Description string      `json:"description" db:"description"`
	Level       CourseLevel `json:"level" db:"level"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time  `json:"deleted_at" db:"deleted_at"` // nil while active
}

// CoursePatch carries the fields of a partial update; nil means unchanged.
type CoursePatch struct {
	Title       *string
	Description *string
	Level       *CourseLevel
}

// IsEmpty reports whether the patch changes nothing
func (p CoursePatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Level == nil
}
