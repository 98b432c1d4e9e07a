package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/controllers"
)

// Route binds a method and a path pattern to a handler
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// CoursesPath is the base path of the course resource
const CoursesPath = "/courses"

// APIPrefix is the versioned mount point
const APIPrefix = "/api/v1"

// CourseRoutes is the route table of the course resource, relative to CoursesPath
func CourseRoutes(cc *controllers.CourseController) []Route {
	return []Route{
		{http.MethodPost, "", cc.CreateCourse},
		{http.MethodGet, "", cc.GetAllCourses},
		{http.MethodGet, "/:id", cc.GetCourseByID},
		{http.MethodPatch, "/:id", cc.UpdateCourse},
		{http.MethodPut, "/:id", cc.UpdateCourse},
		{http.MethodDelete, "/:id", cc.DeleteCourse},
	}
}

// Register adds every route of table to group
func Register(group gin.IRoutes, table []Route) {
	for _, r := range table {
		group.Handle(r.Method, r.Path, r.Handler)
	}
}

// SetupRouter mounts the course routes at /courses and /api/v1/courses
func SetupRouter(router *gin.Engine, courseController *controllers.CourseController) {
	table := CourseRoutes(courseController)

	Register(router.Group(CoursesPath), table)

	v1 := router.Group(APIPrefix)
	Register(v1.Group(CoursesPath), table)
}
