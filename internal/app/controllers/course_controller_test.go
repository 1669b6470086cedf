package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/controllers"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/models"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/repositories"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/routes"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/services"
)

func listingID(v int64) *int64 { return &v }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repositories.NewStore(repositories.Tables{
		Courses: []models.Course{
			{ID: 1, Code: "CSCE 4010", Name: "Data Structures"},
			{ID: 2, Code: "MATH 1500", Name: "Calculus I"},
		},
		Listings: []models.CatalogListing{
			{ID: 10, CourseID: 1, CatalogYear: 2022, Code: "CSCE 4010", Name: "Data Structures"},
			{ID: 20, CourseID: 2, CatalogYear: 2020, Code: "MATH 1500", Name: "Calculus I"},
		},
		Offerings: []models.Offering{
			{ID: 100, CatalogListingID: listingID(10), Year: 2020, BroadSemester: models.SemesterFall, SpecificSemester: "Fall 1"},
			{ID: 101, CatalogListingID: listingID(10), Year: 2019, BroadSemester: models.SemesterSpring, SpecificSemester: "Spring"},
		},
		SemesterOrder: models.SemesterOrder{
			"Fall 1": {Broad: models.SemesterFall, Ordinal: 1},
			"Spring": {Broad: models.SemesterSpring, Ordinal: 1},
		},
	})
	svcs := services.NewServices(store, 2025)

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewCourseController(svcs.Search, svcs.Aggregation, svcs.Export),
		controllers.NewSelectionController(svcs.Selection),
		controllers.NewStateController(svcs.Session),
		controllers.NewDatasetController(store, ""),
	)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

type dataEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) dataEnvelope {
	t.Helper()
	var envelope dataEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope
}

func TestCourseController_GetAllCourses(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/courses")
	require.Equal(t, http.StatusOK, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	var courses []models.Course
	require.NoError(t, json.Unmarshal(envelope.Data, &courses))
	require.Len(t, courses, 2)
	assert.Equal(t, int64(1), courses[0].ID)
}

func TestCourseController_SearchCourses(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/courses/search?q=calculus")
	require.Equal(t, http.StatusOK, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	var courses []models.Course
	require.NoError(t, json.Unmarshal(envelope.Data, &courses))
	require.Len(t, courses, 1)
	assert.Equal(t, int64(2), courses[0].ID)
}

func TestCourseController_GetCourseByID(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/courses/1")
	require.Equal(t, http.StatusOK, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	var detail services.CourseDetail
	require.NoError(t, json.Unmarshal(envelope.Data, &detail))
	assert.Equal(t, "CSCE 4010", detail.Course.Code)
	require.NotNil(t, detail.Listing)
	assert.Equal(t, int64(10), detail.Listing.ID)
	assert.Equal(t, 2, detail.Stats.TotalOfferings)
}

func TestCourseController_InvalidID(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/courses/abc")
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VAL_001", envelope.Error.Code)
}

func TestCourseController_NotFound(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/courses/9999")
	require.Equal(t, http.StatusNotFound, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "RES_001", envelope.Error.Code)
}

func TestCourseController_GetCourseMatrix(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/courses/1/matrix")
	require.Equal(t, http.StatusOK, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	var matrix services.OccupancyMatrix
	require.NoError(t, json.Unmarshal(envelope.Data, &matrix))
	require.Len(t, matrix.Years, 2)
	assert.Equal(t, 2020, matrix.Years[0].Year)
}

func TestCourseController_ExportUnsupportedFormat(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/courses/1/export?format=csv")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCourseController_ExportXLSX(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/courses/1/export")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "course_1.xlsx")
	assert.NotEmpty(t, recorder.Body.Bytes())
}

func TestDatasetController_HealthCheck(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"ok"`)
}

func TestDatasetController_DownloadUnconfigured(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/dataset/download")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}
