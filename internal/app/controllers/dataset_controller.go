package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/models/dto"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/repositories"
)

// DatasetController serves the raw dataset file and readiness information.
type DatasetController struct {
	store           *repositories.Store
	datasetFilePath string
}

// NewDatasetController creates a new DatasetController
func NewDatasetController(store *repositories.Store, datasetFilePath string) *DatasetController {
	return &DatasetController{
		store:           store,
		datasetFilePath: datasetFilePath,
	}
}

// DownloadDataset serves the raw dataset file
// @Summary Download dataset
// @Description Serves the raw dataset file the catalog was loaded from, for offline use
// @Tags dataset
// @Produce application/octet-stream
// @Success 200 {file} binary "Dataset file"
// @Failure 503 {object} dto.APIResponse "Dataset file unavailable"
// @Router /dataset/download [get]
func (c *DatasetController) DownloadDataset(ctx *gin.Context) {
	if c.datasetFilePath == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeDatasetUnavailable, "Dataset file is not configured")
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))
		return
	}
	if _, err := os.Stat(c.datasetFilePath); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeDatasetUnavailable, "Dataset file is unavailable")
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.FileAttachment(c.datasetFilePath, filepath.Base(c.datasetFilePath))
}

// HealthCheck reports service readiness
// @Summary Health check
// @Description Reports readiness along with the size of the loaded dataset
// @Tags dataset
// @Produce json
// @Success 200 {object} dto.APIResponse "Service is ready"
// @Router /health [get]
func (c *DatasetController) HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{
		"status":  "ok",
		"courses": len(c.store.AllCourseIDs()),
	}))
}
