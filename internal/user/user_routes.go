package user

import (
	"go-assetms/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Credential endpoints are public but rate limited per client IP.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	users := r.Group("/users")
	{
		users.POST("/register", middleware.RateLimitByIP(0.1, 3), handler.Register)
		users.POST("/login", middleware.RateLimitByIP(0.5, 5), handler.Login)
	}
}
