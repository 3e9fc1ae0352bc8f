package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger   "github.com/swaggo/gin-swagger"

	"event-reservation/internal/handler/api"
	"event-reservation/internal/handler/middleware"
	"event-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	reservationHandler *api.ReservationHandler,
	adminUserHandler *api.AdminUserHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, authMiddleware)
	setupRoutes(engine, reservationHandler, adminUserHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, authMiddleware *middleware.AuthMiddleware) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	// anonymous requests pass through; access rules live in the usecases
	engine.Use(authMiddleware.Authenticate())
}

func setupRoutes(engine *gin.Engine, reservationHandler *api.ReservationHandler, adminUserHandler *api.AdminUserHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	reservations := engine.Group("/reservations")
	{
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: reservationHandler.Submit},
			{Method: http.MethodGet, Path: "", Handler: reservationHandler.Index},
			{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Show},
		})
	}

	adminUsers := engine.Group("/admin/users")
	{
		addRoutes(adminUsers, []route{
			{Method: http.MethodGet, Path: "", Handler: adminUserHandler.List},
			{Method: http.MethodPatch, Path: "/:id", Handler: adminUserHandler.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: adminUserHandler.Destroy},
			{Method: http.MethodPost, Path: "/:id/promote", Handler: adminUserHandler.Promote},
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
