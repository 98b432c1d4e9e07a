package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/app/validators"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// Envelope messages of the course endpoints
const (
	MsgCourseCreated    = "Course created successfully"
	MsgCourseNotCreated = "Course not created"
	MsgAllCourses       = "All courses"
	MsgCoursesNotListed = "Courses not retrieved"
	MsgCourse           = "Course"
	MsgCourseNotFetched = "Course not retrieved"
	MsgCourseUpdated    = "Course updated successfully"
	MsgCourseNotUpdated = "Course not updated"
	MsgCourseDeleted    = "Course deleted successfully"
	MsgCourseNotDeleted = "Course not deleted"
)

// CourseController handles course endpoints
type CourseController struct {
	courseService services.CourseService
	validator     *validators.CourseValidator
}

// NewCourseController creates a new CourseController. The validator completes
// body decoding errors with the rule violations of the other fields.
func NewCourseController(courseService services.CourseService, validator *validators.CourseValidator) *CourseController {
	return &CourseController{
		courseService: courseService,
		validator:     validator,
	}
}

// bindCourse decodes the body into obj. When some members have the wrong JSON
// type, check runs on the members that decoded so the response names every
// violated field.
func (c *CourseController) bindCourse(ctx *gin.Context, obj interface{}, check func(*validators.CourseValidator) error) error {
	err := middleware.BindJSON(ctx, obj)
	if err == nil {
		return nil
	}

	var verr *apperrors.ValidationError
	if c.validator == nil || !errors.As(err, &verr) || verr.HasField(middleware.BodyField) {
		return err
	}
	return verr.Merge(check(c.validator))
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Creates a course; id and timestamps are generated by the server
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.Envelope{data=dto.CourseResponse} "Course created successfully"
// @Failure 400 {object} dto.Envelope "Validation failed or course not created"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	err := c.bindCourse(ctx, &req, func(v *validators.CourseValidator) error {
		return v.ValidateCreate(req)
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err, MsgCourseNotCreated)
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, MsgCourseNotCreated)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessEnvelope(MsgCourseCreated, dto.NewCourseResponse(course)))
}

// GetAllCourses lists active courses
// @Summary List courses
// @Description Returns every course that has not been deleted, oldest first
// @Tags courses
// @Produce json
// @Success 200 {object} dto.Envelope{data=[]dto.CourseResponse} "All courses"
// @Failure 400 {object} dto.Envelope "Courses not retrieved"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, MsgCoursesNotListed)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope(MsgAllCourses, dto.NewCourseListResponse(courses)))
}

// GetCourseByID retrieves a course by ID
// @Summary Get course details
// @Tags courses
// @Produce json
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.Envelope{data=dto.CourseResponse} "Course"
// @Failure 404 {object} dto.Envelope "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, MsgCourseNotFetched)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope(MsgCourse, dto.NewCourseResponse(course)))
}

// UpdateCourse applies a partial update
// @Summary Update a course
// @Description Updates any subset of title, description and level. PUT is accepted as an alias.
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID" Format(uuid)
// @Param request body dto.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} dto.Envelope{data=dto.CourseResponse} "Course updated successfully"
// @Failure 400 {object} dto.Envelope "Validation failed or course not updated"
// @Failure 404 {object} dto.Envelope "Course not found"
// @Router /courses/{id} [patch]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	err := c.bindCourse(ctx, &req, func(v *validators.CourseValidator) error {
		return v.ValidateUpdate(req)
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err, MsgCourseNotUpdated)
		return
	}

	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, MsgCourseNotUpdated)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope(MsgCourseUpdated, dto.NewCourseResponse(course)))
}

// DeleteCourse soft-deletes a course
// @Summary Delete a course
// @Description Marks the course as deleted. Deleting an unknown or already deleted course succeeds.
// @Tags courses
// @Produce json
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.Envelope "Course deleted successfully"
// @Failure 400 {object} dto.Envelope "Course not deleted"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.DeleteCourse(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err, MsgCourseNotDeleted)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope(MsgCourseDeleted, nil))
}
