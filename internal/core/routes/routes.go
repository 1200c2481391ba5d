package routes

import (
	"time"

	"assettracking/internal/core/container"
	"assettracking/internal/middleware"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

func NewRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(c.Logger), middleware.RequestLogger(c.Logger))

	RegisterPublicRoutes(router, c)
	RegisterUtilityRoutes(router, c)

	return router
}

func RegisterPublicRoutes(router *gin.Engine, c *container.Container) {
	c.OfficeHandler.RegisterRoutes(router)
	c.AssetHandler.RegisterRoutes(router)
	c.ReportHandler.RegisterRoutes(router)
}

func RegisterUtilityRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/health", middleware.HealthCheckHandler(c.DB, healthTimeout))
}
