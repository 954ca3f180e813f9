// Package api exposes the monument search service over HTTP.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gcbaptista/monument-search/services"
)

// API holds dependencies for the HTTP handlers: the search core, the
// history log and the storage collaborator for the plain read endpoints.
type API struct {
	searcher services.Searcher
	history  services.HistoryLog
	store    services.MonumentStore
}

// NewAPI creates a new API handler structure.
func NewAPI(searcher services.Searcher, history services.HistoryLog, store services.MonumentStore) *API {
	return &API{
		searcher: searcher,
		history:  history,
		store:    store,
	}
}

// SetupRoutes defines all the API routes for the monument search service.
func SetupRoutes(router *gin.Engine, searcher services.Searcher, history services.HistoryLog, store services.MonumentStore, gatherer prometheus.Gatherer) {
	apiHandler := NewAPI(searcher, history, store)

	router.Use(CORSMiddleware())

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Prometheus metrics
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	// Search and history routes
	router.POST("/search", apiHandler.SearchHandler)
	router.GET("/history", apiHandler.GetHistoryHandler)
	router.POST("/history", apiHandler.RecordHistoryHandler)

	// Monument read routes
	monumentRoutes := router.Group("/monuments")
	{
		monumentRoutes.GET("", apiHandler.ListMonumentsHandler)           // List all monuments
		monumentRoutes.GET("/years", apiHandler.ConstructionYearsHandler) // Oldest/newest construction year
		monumentRoutes.GET("/within", apiHandler.MonumentsWithinHandler)  // Bounding-box query
		monumentRoutes.GET("/:monumentId", apiHandler.GetMonumentHandler) // Get specific monument
	}
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
