// Package response defines the uniform JSON envelope returned by the API.
package response

import "github.com/gin-gonic/gin"

// Envelope is the response body shape shared by every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// JSON writes an Envelope with the given status code.
func JSON(c *gin.Context, code int, success bool, message string, data any) {
	c.JSON(code, Envelope{
		Success: success,
		Message: message,
		Data:    data,
	})
}
