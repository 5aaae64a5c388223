package response

import (
	"github.com/gin-gonic/gin"
)

// errorBody is the JSON shape every failure shares: a human-readable message,
// plus optional field-level detail on validation failures.
type errorBody struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Fail sends an error response with the given status and message.
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, errorBody{Message: message})
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, message string, fields map[string]string) {
	c.JSON(statusCode, errorBody{Message: message, Fields: fields})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorBody{Message: message})
}
