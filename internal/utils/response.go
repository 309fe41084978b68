package utils

import "github.com/gin-gonic/gin"

// ErrorBody is the wire shape for every error response: {"error": "..."}.
// The storefront frontend matches on this exact shape.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error writes an error response with the given status code and message.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}
