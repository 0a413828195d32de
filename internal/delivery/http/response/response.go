// Package response defines the JSON shapes the API writes.
package response

import (
	"github.com/labstack/echo/v4"
)

// MessageBody is the body used for acknowledgements and every error.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes the payload as-is with the given status code.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Message writes a {"message": ...} acknowledgement.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}
