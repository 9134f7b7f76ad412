package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"firm-digest/internal/handler/api"
	"firm-digest/internal/handler/middleware"
	"firm-digest/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, jobHandler *api.JobHandler, opsHandler *api.OperationsHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, jobHandler, opsHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, jobHandler *api.JobHandler, opsHandler *api.OperationsHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if !cfg.Admin.APIEnabled {
		return
	}

	admin := engine.Group("/admin")
	admin.Use(authMiddleware.RequireAdmin())
	{
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/jobs", Handler: jobHandler.List},
			{Method: http.MethodGet, Path: "/jobs/failed", Handler: jobHandler.ListFailed},
			{Method: http.MethodGet, Path: "/jobs/:id", Handler: jobHandler.Get},
			{Method: http.MethodGet, Path: "/firms/:id/status", Handler: jobHandler.FirmStatus},
			{Method: http.MethodPost, Path: "/scheduler/run", Handler: opsHandler.RunSchedulingPass},
			{Method: http.MethodPost, Path: "/worker/run", Handler: opsHandler.RunWorkerBatch},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
