package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/models/dto"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/services"
)

// SelectionController handles the listing inclusion mask.
type SelectionController struct {
	selectionService *services.SelectionService
}

// NewSelectionController creates a new SelectionController
func NewSelectionController(selection *services.SelectionService) *SelectionController {
	return &SelectionController{selectionService: selection}
}

// ToggleListing flips a listing's inclusion flag
// @Summary Toggle listing inclusion
// @Description Flips whether a catalog listing contributes to its course's aggregated views
// @Tags selection
// @Produce json
// @Param id path int true "Catalog listing ID"
// @Success 200 {object} dto.APIResponse{data=dto.SelectionToggleResponse} "New inclusion state"
// @Failure 400 {object} dto.APIResponse "Invalid listing ID"
// @Router /selection/listings/{id}/toggle [post]
func (c *SelectionController) ToggleListing(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid listing ID")
		errorDetail = errorDetail.WithField("id").WithDetails("Listing ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	included := c.selectionService.Toggle(id)
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.SelectionToggleResponse{
		ListingID: id,
		Included:  included,
	}))
}

// SetListings sets inclusion for a batch of listings
// @Summary Bulk set listing inclusion
// @Description Sets the inclusion flag for every listed listing ID in one atomic operation, used by select-all and deselect-all
// @Tags selection
// @Accept json
// @Produce json
// @Param request body dto.SelectionBulkRequest true "Listing IDs and target state"
// @Success 200 {object} dto.APIResponse{data=dto.SelectionBulkRequest} "Applied state"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Router /selection/listings [put]
func (c *SelectionController) SetListings(ctx *gin.Context) {
	var req dto.SelectionBulkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid selection data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	c.selectionService.SetAll(req.ListingIDs, *req.Included)
	ctx.JSON(http.StatusOK, dto.NewDataResponse(req))
}

// GetCourseSelection retrieves a course's included listing ids
// @Summary Get course selection
// @Description Retrieves the IDs of the course's catalog listings currently included in aggregation
// @Tags selection
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SelectionResponse} "Included listing IDs"
// @Failure 400 {object} dto.APIResponse "Invalid course ID"
// @Router /selection/courses/{id} [get]
func (c *SelectionController) GetCourseSelection(ctx *gin.Context) {
	id, ok := courseID(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.SelectionResponse{
		CourseID:   id,
		ListingIDs: c.selectionService.SelectedListingIDs(id),
	}))
}
