package bootstrap

import (
	"github.com/gin-gonic/gin"

	"github.com/dataplatform-hub/search/internal/api"
	"github.com/dataplatform-hub/search/internal/config"
	"github.com/dataplatform-hub/search/internal/elasticsearch"
	"github.com/dataplatform-hub/search/internal/logger"
)

// SetupHTTPServer creates and configures the HTTP server.
func SetupHTTPServer(
	cfg *config.Config,
	esClient *elasticsearch.Client,
	repos *Repositories,
	log logger.Logger,
) *api.Server {
	handler := api.NewHandler(repos.MetadataItems, repos.ItemActivities, repos.CombinedActivities, log)
	metrics := api.NewMetrics("search")

	serverConfig := &api.ServerConfig{
		ServiceName:    cfg.Service.Name,
		ServiceVersion: cfg.Service.Version,
		Port:           cfg.Service.Port,
		Debug:          cfg.Service.Debug,
	}

	return api.NewServer(serverConfig, log, metrics, func(router *gin.Engine) {
		api.RegisterHealthRoutes(router, cfg.Service.Name, cfg.Service.Version, esClient)
		api.SetupRoutes(router, handler)
	})
}
