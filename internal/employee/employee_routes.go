package employee

import (
	"go-assetms/internal/middleware"
	"go-assetms/internal/shared/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Employee routes require a bearer token. The guard runs before any handler
// and aborts unauthenticated requests.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	tokens *token.Manager,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(tokens))
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("", handler.GetAll)
		employees.POST("", handler.Create)
		employees.PUT("/:employeeId", handler.Update)
	}
}
