package office

import (
	"github.com/gin-gonic/gin"
)

// Office routes are open: the directory of offices is readable and
// maintainable without an account.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	offices := r.Group("/offices")
	{
		offices.POST("", handler.Create)
		offices.GET("", handler.GetAll)
		offices.PUT("/:officeId", handler.Update)
	}
}
