package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures the API routes.
func SetupRoutes(router *gin.Engine, handler *Handler) {
	v1 := router.Group("/v1")

	metadataItems := v1.Group("/metadata-items")
	metadataItems.GET("/", handler.ListMetadataItems)
	metadataItems.GET("/:pk", handler.GetMetadataItem)

	itemActivities := v1.Group("/item-activity-logs")
	itemActivities.GET("/", handler.ListItemActivities)

	datasetActivities := v1.Group("/dataset-activity-logs")
	datasetActivities.GET("/", handler.ListDatasetActivities)

	projectFiles := v1.Group("/project-files")
	projectFiles.GET("/:project_code/size", handler.GetProjectSizeUsage)
	projectFiles.GET("/:project_code/statistics", handler.GetProjectStatistics)
	projectFiles.GET("/:project_code/activity", handler.GetProjectFileActivity)
}
