package middleware

import (
	"net/http"
	"strings"

	"go-assetms/internal/shared/contextutil"
	"go-assetms/internal/shared/response"
	"go-assetms/internal/shared/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates protected routes. It verifies the bearer token before
// the handler runs and aborts with one fixed 401 shape on any failure, so a
// missing token, a bad signature and an expired token are indistinguishable
// to the caller.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			unauthorized(c)
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		// Propagate to the standard context so service/repo layers can read
		// the identity without knowing about Gin.
		ctx := contextutil.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token", nil)
	c.Abort()
}
