package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-scorecard/errors"
	"github.com/johnquangdev/meeting-scorecard/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-scorecard/pkg/config"
)

const serviceName = "meeting-scorecard"

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	analysisHandler *Analysis
	storageHandler  *Storage
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, analysisHandler *Analysis, storageHandler *Storage) *Router {
	return &Router{
		cfg:             cfg,
		analysisHandler: analysisHandler,
		storageHandler:  storageHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group(apiBasePath)

	rt.setupAnalysisRoutes(v1)
	rt.setupStorageRoutes(v1)
}

// setupAnalysisRoutes configures meeting and import routes
func (rt *Router) setupAnalysisRoutes(g *echo.Group) {
	if rt.analysisHandler == nil {
		g.Any("/meetings/*", rt.notImplemented)
		g.Any("/imports/*", rt.notImplemented)
		return
	}

	g.GET("/catalog", rt.analysisHandler.Catalog)
	g.POST("/meetings/analyze", rt.analysisHandler.AnalyzeMeeting)

	imports := g.Group("/imports")
	imports.POST("/csv", rt.analysisHandler.ImportCSV)
	imports.POST("/url", rt.analysisHandler.ImportURL)
	imports.POST("/demo", rt.analysisHandler.ImportDemo)
	imports.GET("/:id", rt.analysisHandler.GetImport)
	imports.GET("/:id/export", rt.analysisHandler.ExportImport)
	imports.POST("/:id/publish", rt.analysisHandler.PublishImport)
}

// setupStorageRoutes configures export bucket routes
func (rt *Router) setupStorageRoutes(g *echo.Group) {
	storageGroup := g.Group("/storage")
	if rt.storageHandler == nil {
		storageGroup.Any("/*", rt.notImplemented)
		return
	}

	storageGroup.GET("/info", rt.storageHandler.BucketInfo)
	storageGroup.GET("/exports", rt.storageHandler.ListExports)
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return HandleError(nil, c, errors.ErrNotImplemented(c.Request().URL.Path))
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	resp := common.HealthResponse{
		Status:  "ok",
		Service: serviceName,
	}
	if rt.cfg != nil {
		storage := "disabled"
		if rt.cfg.Storage.Enabled {
			storage = "enabled"
		}
		resp.Components = map[string]string{
			"environment": rt.cfg.Server.Environment,
			"cache":       rt.cfg.Cache.Driver,
			"storage":     storage,
		}
	}
	return c.JSON(http.StatusOK, resp)
}
