package routes

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/controllers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSetupRouter_RegistersRouteTable(t *testing.T) {
	router := gin.New()
	SetupRouter(router, controllers.NewCourseController(nil, nil))

	var got []string
	for _, r := range router.Routes() {
		got = append(got, r.Method+" "+r.Path)
	}
	sort.Strings(got)

	want := []string{
		"DELETE /api/v1/courses/:id",
		"DELETE /courses/:id",
		"GET /api/v1/courses",
		"GET /api/v1/courses/:id",
		"GET /courses",
		"GET /courses/:id",
		"PATCH /api/v1/courses/:id",
		"PATCH /courses/:id",
		"POST /api/v1/courses",
		"POST /courses",
		"PUT /api/v1/courses/:id",
		"PUT /courses/:id",
	}
	assert.Equal(t, want, got)
}

func TestRegister(t *testing.T) {
	router := gin.New()
	called := ""
	Register(router.Group("/things"), []Route{
		{http.MethodGet, "/:id", func(c *gin.Context) { called = c.Param("id") }},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/42", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", called)
}

func TestSetupSwagger(t *testing.T) {
	router := gin.New()
	SetupSwagger(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/courses/{id}"`)
	assert.Contains(t, w.Body.String(), "CourseHub API")
}
