// Package response renders the API's JSON envelope: every reply is either
// {success: true, data: ...} or {success: false, error: {code, message}}.
package response

import "github.com/gin-gonic/gin"

type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, envelope{Success: true, Data: data})
}

// Error writes the failure envelope. Code is the machine-readable taxonomy
// entry (VALIDATION_ERROR, NOT_FOUND, ...); message is for humans.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, envelope{
		Success: false,
		Error:   &errorBody{Code: code, Message: message},
	})
}

// ErrorWithDetails attaches a structured payload, typically the field ->
// failed-tag map from validation.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, envelope{
		Success: false,
		Error:   &errorBody{Code: code, Message: message, Details: details},
	})
}
