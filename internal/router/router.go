package router

import (
	"github.com/gin-gonic/gin"
	"github.com/statusping/api-backend/internal/handlers"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// New builds the application router with default middleware (logger and
// recovery). The engine is returned to the caller instead of being held in a
// package-level variable so main owns the server lifecycle.
func New() *gin.Engine {
	r := gin.Default()

	// Non-GET requests to a known path get 405 instead of gin's default 404
	r.HandleMethodNotAllowed = true

	r.GET("/health", handlers.HealthCheck)

	// Swagger UI, generated from the handler annotations (see docs/)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
