package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the single error envelope used by every endpoint. Auth
// failures always produce the exact same shape regardless of cause.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ErrorBody{
		Code:    errorCode,
		Message: message,
		Details: details,
	})
}
