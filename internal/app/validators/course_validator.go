package validators

import (
	"strings"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/validation"
)

// courseRules is the constraint table shared by create and update.
var courseRules = validation.RuleSet{
	{Field: "title", Tag: "required,notblank"},
	{Field: "description", Tag: "required,notblank"},
	{Field: "level", Tag: "required,course_level"},
}

// CourseValidator checks the shape of course payloads before they reach the service.
type CourseValidator struct {
	engine *validation.Engine
}

// NewCourseValidator creates a CourseValidator
func NewCourseValidator() *CourseValidator {
	engine := validation.NewEngine()
	levels := make([]string, 0, len(models.CourseLevels))
	for _, l := range models.CourseLevels {
		levels = append(levels, string(l))
	}
	engine.MustRegisterTag("course_level", func(s string) bool {
		_, ok := models.ParseCourseLevel(s)
		return ok
	}, "must be one of "+strings.Join(levels, ", "))

	return &CourseValidator{engine: engine}
}

// ValidateCreate requires every field.
func (v *CourseValidator) ValidateCreate(req dto.CreateCourseRequest) error {
	return v.engine.Check(courseRules, map[string]*string{
		"title":       &req.Title,
		"description": &req.Description,
		"level":       &req.Level,
	}, false)
}

// ValidateUpdate checks only the fields present; an empty payload is valid.
func (v *CourseValidator) ValidateUpdate(req dto.UpdateCourseRequest) error {
	return v.engine.Check(courseRules, map[string]*string{
		"title":       req.Title,
		"description": req.Description,
		"level":       req.Level,
	}, true)
}
