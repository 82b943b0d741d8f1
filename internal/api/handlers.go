package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dataplatform-hub/search/internal/domain"
	"github.com/dataplatform-hub/search/internal/logger"
	"github.com/dataplatform-hub/search/internal/service"
)

// Handler handles HTTP requests of the search API.
type Handler struct {
	metadataItems      *service.MetadataItemCRUD
	itemActivities     *service.ItemActivityCRUD
	combinedActivities *service.DatasetAndItemActivityCRUD
	logger             logger.Logger
}

// NewHandler creates a new API handler.
func NewHandler(
	metadataItems *service.MetadataItemCRUD,
	itemActivities *service.ItemActivityCRUD,
	combinedActivities *service.DatasetAndItemActivityCRUD,
	log logger.Logger,
) *Handler {
	return &Handler{
		metadataItems:      metadataItems,
		itemActivities:     itemActivities,
		combinedActivities: combinedActivities,
		logger:             log,
	}
}

// listResponse is the common shape of all listing endpoints.
func listResponse[M any](page *domain.PageOf[M]) gin.H {
	return gin.H{
		"num_of_pages": page.TotalPages(),
		"page":         page.Number(),
		"total":        page.Count,
		"result":       page.Entries,
	}
}

// ListMetadataItems handles GET /v1/metadata-items/.
func (h *Handler) ListMetadataItems(c *gin.Context) {
	var params metadataItemListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	filter, problem := params.Filter()
	if problem != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, []ValidationErrorSchema{*problem})
		return
	}

	page, err := h.metadataItems.List(c.Request.Context(), params.Pagination(), params.Sorting(), filter)
	if err != nil {
		respondInternalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, listResponse(page))
}

// GetMetadataItem handles GET /v1/metadata-items/:pk.
func (h *Handler) GetMetadataItem(c *gin.Context) {
	item, err := h.metadataItems.RetrieveByPK(c.Request.Context(), c.Param("pk"))
	if err != nil {
		respondEntityError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// ListItemActivities handles GET /v1/item-activity-logs/.
func (h *Handler) ListItemActivities(c *gin.Context) {
	var params itemActivityListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	filter, problem := params.Filter()
	if problem != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, []ValidationErrorSchema{*problem})
		return
	}

	page, err := h.itemActivities.List(c.Request.Context(), params.Pagination(), params.Sorting(), filter)
	if err != nil {
		respondInternalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, listResponse(page))
}

// ListDatasetActivities handles GET /v1/dataset-activity-logs/. The listing
// combines dataset and item activity logs, each entry tagged with the index
// it came from.
func (h *Handler) ListDatasetActivities(c *gin.Context) {
	var params datasetActivityListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	filter, problem := params.Filter()
	if problem != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, []ValidationErrorSchema{*problem})
		return
	}

	page, err := h.combinedActivities.List(c.Request.Context(), params.Pagination(), params.Sorting(), filter)
	if err != nil {
		respondInternalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, listResponse(page))
}

// GetProjectSizeUsage handles GET /v1/project-files/:project_code/size.
func (h *Handler) GetProjectSizeUsage(c *gin.Context) {
	var params projectSizeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	from, to, problem := params.Range()
	if problem != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, []ValidationErrorSchema{*problem})
		return
	}

	filter := &domain.ProjectSizeUsageFilter{
		ProjectCode: c.Param("project_code"),
		ParentPath:  params.ParentPath,
		FromDate:    from,
		ToDate:      to,
	}

	sizeUsage, err := h.metadataItems.GetProjectSizeUsage(
		c.Request.Context(), filter, params.TimeZone, domain.SizeGroupBy(params.GroupBy),
	)
	if err != nil {
		respondInternalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sizeUsage})
}

// GetProjectStatistics handles GET /v1/project-files/:project_code/statistics.
func (h *Handler) GetProjectStatistics(c *gin.Context) {
	var params projectStatisticsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	if !timeZoneRegexp.MatchString(params.TimeZone) {
		respondValidationError(c, "time_zone", "must match [+-]HH:MM")
		return
	}

	projectCode := c.Param("project_code")
	now := time.Now().UTC()

	statistics, err := h.metadataItems.GetProjectStatistics(
		c.Request.Context(), projectCode, params.ParentPath, params.Zone,
	)
	if err != nil {
		respondInternalError(c, h.logger, err)
		return
	}

	transferStatistics, err := h.itemActivities.GetProjectTransferStatistics(
		c.Request.Context(), projectCode, now, params.TimeZone, params.ParentPath, params.Zone,
	)
	if err != nil {
		respondInternalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"files": gin.H{
			"total_count": statistics.Count,
			"total_size":  statistics.Size,
		},
		"activity": gin.H{
			"today_uploaded":   transferStatistics.Uploaded,
			"today_downloaded": transferStatistics.Downloaded,
		},
	})
}

// GetProjectFileActivity handles GET /v1/project-files/:project_code/activity.
func (h *Handler) GetProjectFileActivity(c *gin.Context) {
	var params projectActivityParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	from, to, problem := params.Range()
	if problem != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, []ValidationErrorSchema{*problem})
		return
	}

	filter := &domain.ProjectFileActivityFilter{
		ProjectCode:  c.Param("project_code"),
		ActivityType: domain.ItemActivityType(params.ActivityType),
		FromDate:     from,
		ToDate:       to,
		User:         params.User,
	}

	fileActivity, err := h.itemActivities.GetProjectFileActivity(
		c.Request.Context(), filter, params.TimeZone, domain.ActivityGroupBy(params.GroupBy),
	)
	if err != nil {
		respondInternalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": fileActivity})
}
