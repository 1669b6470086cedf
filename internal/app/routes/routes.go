package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	selectionController *controllers.SelectionController,
	stateController *controllers.StateController,
	datasetController *controllers.DatasetController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Course browsing and derived views
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/search", courseController.SearchCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.GET("/:id/listings", courseController.GetCourseListings)
		courses.GET("/:id/matrix", courseController.GetCourseMatrix)
		courses.GET("/:id/offerings", courseController.GetCourseOfferings)
		courses.GET("/:id/export", courseController.ExportCourse)
	}

	// Listing inclusion mask
	selection := v1.Group("/selection")
	{
		selection.POST("/listings/:id/toggle", selectionController.ToggleListing)
		selection.PUT("/listings", selectionController.SetListings)
		selection.GET("/courses/:id", selectionController.GetCourseSelection)
	}

	// Browsing session
	state := v1.Group("/state")
	{
		state.GET("", stateController.GetState)
		state.POST("/courses", stateController.AddCourse)
		state.POST("/courses/reorder", stateController.ReorderCourses)
		state.DELETE("/courses/:id", stateController.RemoveCourse)
		state.POST("/courses/:id/pin", stateController.TogglePin)
		state.PUT("/active", stateController.SetActive)
		state.PUT("/toggles", stateController.SetToggles)
		state.GET("/share", stateController.Share)
		state.POST("/restore", stateController.Restore)
	}

	// Dataset pass-through
	v1.GET("/dataset/download", datasetController.DownloadDataset)

	// Readiness
	router.GET("/health", datasetController.HealthCheck)
}
