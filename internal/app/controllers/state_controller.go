package controllers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/models/dto"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/services"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/middleware"
)

// StateController handles the browsing session: displayed and pinned
// courses, the active timeline course, display toggles, and share links.
type StateController struct {
	sessionService *services.SessionService
}

// NewStateController creates a new StateController
func NewStateController(session *services.SessionService) *StateController {
	return &StateController{sessionService: session}
}

func bindJSON(ctx *gin.Context, target interface{}) bool {
	if err := ctx.ShouldBindJSON(target); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}

// GetState retrieves the session snapshot
// @Summary Get session state
// @Description Retrieves the current session: toggles, pinned and displayed courses, and the active course with its filters
// @Tags state
// @Produce json
// @Success 200 {object} dto.APIResponse{data=services.SessionSnapshot} "Session state"
// @Router /state [get]
func (c *StateController) GetState(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewDataResponse(c.sessionService.Snapshot()))
}

// AddCourse adds a course to the displayed list
// @Summary Add displayed course
// @Description Adds a course to the displayed list, pins it when auto-pin is on, and makes it the active course
// @Tags state
// @Accept json
// @Produce json
// @Param request body dto.AddCourseRequest true "Course to add"
// @Success 200 {object} dto.APIResponse{data=services.SessionSnapshot} "Updated session state"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /state/courses [post]
func (c *StateController) AddCourse(ctx *gin.Context) {
	var req dto.AddCourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.sessionService.AddCourse(req.CourseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(c.sessionService.Snapshot()))
}

// RemoveCourse removes a course from the displayed list
// @Summary Remove displayed course
// @Description Removes a course from the displayed and pinned lists, clearing the active course if it was active
// @Tags state
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=services.SessionSnapshot} "Updated session state"
// @Failure 400 {object} dto.APIResponse "Invalid course ID"
// @Router /state/courses/{id} [delete]
func (c *StateController) RemoveCourse(ctx *gin.Context) {
	id, ok := courseID(ctx)
	if !ok {
		return
	}

	c.sessionService.RemoveCourse(id)
	ctx.JSON(http.StatusOK, dto.NewDataResponse(c.sessionService.Snapshot()))
}

// TogglePin pins or unpins a displayed course
// @Summary Toggle course pin
// @Description Pins the course if unpinned, unpins it if pinned
// @Tags state
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=services.SessionSnapshot} "Updated session state"
// @Failure 400 {object} dto.APIResponse "Invalid course ID"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /state/courses/{id}/pin [post]
func (c *StateController) TogglePin(ctx *gin.Context) {
	id, ok := courseID(ctx)
	if !ok {
		return
	}

	if err := c.sessionService.TogglePin(id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(c.sessionService.Snapshot()))
}

// ReorderCourses moves a displayed course to a new position
// @Summary Reorder displayed courses
// @Description Moves the displayed course at position "from" to position "to"
// @Tags state
// @Accept json
// @Produce json
// @Param request body dto.ReorderRequest true "Source and target positions"
// @Success 200 {object} dto.APIResponse{data=services.SessionSnapshot} "Updated session state"
// @Failure 400 {object} dto.APIResponse "Invalid positions"
// @Router /state/courses/reorder [post]
func (c *StateController) ReorderCourses(ctx *gin.Context) {
	var req dto.ReorderRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.sessionService.Reorder(*req.From, *req.To); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(c.sessionService.Snapshot()))
}

// SetActive activates a course for the timeline view
// @Summary Set active course
// @Description Makes a course the active timeline course with optional year and semester filters; course ID 0 clears the active course
// @Tags state
// @Accept json
// @Produce json
// @Param request body dto.SetActiveRequest true "Course and filters"
// @Success 200 {object} dto.APIResponse{data=services.SessionSnapshot} "Updated session state"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /state/active [put]
func (c *StateController) SetActive(ctx *gin.Context) {
	var req dto.SetActiveRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.sessionService.SetActive(req.CourseID, req.Year, req.Semesters); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(c.sessionService.Snapshot()))
}

// SetToggles updates the display toggles
// @Summary Update display toggles
// @Description Updates any subset of the display toggles; omitted fields keep their current value
// @Tags state
// @Accept json
// @Produce json
// @Param request body dto.TogglesRequest true "Toggles to change"
// @Success 200 {object} dto.APIResponse{data=services.SessionSnapshot} "Updated session state"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Router /state/toggles [put]
func (c *StateController) SetToggles(ctx *gin.Context) {
	var req dto.TogglesRequest
	if !bindJSON(ctx, &req) {
		return
	}

	c.sessionService.SetToggles(req.AutoPin, req.ShowGroups, req.ShowCount, req.ShowAllYears, req.GranularView)
	ctx.JSON(http.StatusOK, dto.NewDataResponse(c.sessionService.Snapshot()))
}

// Share encodes the session as a query string
// @Summary Share session
// @Description Encodes the current session as a compact URL query string; default values are omitted
// @Tags state
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ShareResponse} "Encoded share query"
// @Router /state/share [get]
func (c *StateController) Share(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ShareResponse{Query: c.sessionService.Share()}))
}

// Restore rebuilds the session from a share query string
// @Summary Restore session
// @Description Decodes a share query string and replaces the current session; malformed parameters fall back to defaults and unknown course IDs are dropped
// @Tags state
// @Accept json
// @Produce json
// @Param request body dto.RestoreRequest true "Share query string"
// @Success 200 {object} dto.APIResponse{data=services.SessionSnapshot} "Restored session state"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Router /state/restore [post]
func (c *StateController) Restore(ctx *gin.Context) {
	var req dto.RestoreRequest
	if !bindJSON(ctx, &req) {
		return
	}

	values, err := url.ParseQuery(req.Query)
	if err != nil {
		values = url.Values{}
	}
	c.sessionService.Restore(values)
	ctx.JSON(http.StatusOK, dto.NewDataResponse(c.sessionService.Snapshot()))
}
