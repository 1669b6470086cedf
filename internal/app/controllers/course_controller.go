package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/models/dto"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/services"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/middleware"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/pkg/apperrors"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/pkg/helpers"
)

// CourseController handles course browsing, search and the derived views.
type CourseController struct {
	searchService      *services.SearchService
	aggregationService *services.AggregationService
	exportService      *services.ExportService
}

// NewCourseController creates a new CourseController
func NewCourseController(search *services.SearchService, aggregation *services.AggregationService, export *services.ExportService) *CourseController {
	return &CourseController{
		searchService:      search,
		aggregationService: aggregation,
		exportService:      export,
	}
}

// courseID parses the :id path parameter. On failure it writes the
// validation response itself and returns false.
func courseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		errorDetail = errorDetail.WithField("id").WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// GetAllCourses retrieves all courses
// @Summary Get all courses
// @Description Retrieves every course in the catalog, ordered by ID
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewDataResponse(c.searchService.SearchCourses("")))
}

// SearchCourses performs a fuzzy course search
// @Summary Search courses
// @Description Fuzzy-matches the query against course codes, names and historical listing names, best matches first
// @Tags courses
// @Produce json
// @Param q query string false "Search query; empty returns all courses"
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Matching courses in rank order"
// @Router /courses/search [get]
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewDataResponse(c.searchService.SearchCourses(ctx.Query("q"))))
}

// GetCourseByID retrieves a course's detail view
// @Summary Get course detail
// @Description Retrieves the course with its most recent selected catalog listing and selection-masked statistics
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=services.CourseDetail} "Course detail retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid course ID"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := courseID(ctx)
	if !ok {
		return
	}

	detail := c.aggregationService.Detail(id)
	if detail.Course.ID == 0 {
		middleware.HandleAPIError(ctx, fmt.Errorf("%w: id %d", apperrors.ErrCourseNotFound, id))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(detail))
}

// GetCourseListings retrieves a course's catalog listings
// @Summary Get course listings
// @Description Retrieves every catalog listing of the course with offering counts and inclusion flags, most recent first
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]services.ListingRow} "Listings retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid course ID"
// @Router /courses/{id}/listings [get]
func (c *CourseController) GetCourseListings(ctx *gin.Context) {
	id, ok := courseID(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(c.aggregationService.ListingRows(id)))
}

// GetCourseMatrix retrieves a course's occupancy matrix
// @Summary Get course occupancy matrix
// @Description Retrieves the year-by-semester offering matrix for the course's selected listings
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Param allYears query bool false "Extend the year range to the full catalog history"
// @Success 200 {object} dto.APIResponse{data=services.OccupancyMatrix} "Matrix retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid course ID"
// @Router /courses/{id}/matrix [get]
func (c *CourseController) GetCourseMatrix(ctx *gin.Context) {
	id, ok := courseID(ctx)
	if !ok {
		return
	}

	allYears := ctx.Query("allYears") == "true"
	ctx.JSON(http.StatusOK, dto.NewDataResponse(c.aggregationService.Matrix(id, allYears)))
}

// GetCourseOfferings retrieves a course's offerings
// @Summary Get course offerings
// @Description Retrieves the course's offerings under the current listing selection, optionally filtered by year and semester, newest first
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Param years query string false "Comma-separated years to include"
// @Param semesters query string false "Comma-separated specific semesters to include"
// @Success 200 {object} dto.APIResponse{data=[]services.OfferingView} "Offerings retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid course ID"
// @Router /courses/{id}/offerings [get]
func (c *CourseController) GetCourseOfferings(ctx *gin.Context) {
	id, ok := courseID(ctx)
	if !ok {
		return
	}

	filter := services.OfferingFilter{
		Years:     helpers.ParseIntList(ctx.Query("years")),
		Semesters: helpers.SplitList(ctx.Query("semesters")),
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(c.aggregationService.Offerings(id, filter)))
}

// ExportCourse exports a course's current view as a document
// @Summary Export course view
// @Description Renders the course detail and occupancy matrix as a downloadable XLSX or PDF document
// @Tags courses
// @Produce application/octet-stream
// @Param id path int true "Course ID"
// @Param format query string true "Export format" Enums(xlsx, pdf)
// @Param allYears query bool false "Extend the year range to the full catalog history"
// @Success 200 {file} binary "Exported document"
// @Failure 400 {object} dto.APIResponse "Invalid course ID or unsupported format"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /courses/{id}/export [get]
func (c *CourseController) ExportCourse(ctx *gin.Context) {
	id, ok := courseID(ctx)
	if !ok {
		return
	}

	format := ctx.DefaultQuery("format", services.ExportFormatXLSX)
	allYears := ctx.Query("allYears") == "true"

	data, contentType, err := c.exportService.CourseView(id, allYears, format)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=course_%d.%s", id, format))
	ctx.Data(http.StatusOK, contentType, data)
}
