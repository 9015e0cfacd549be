package shopapi

import (
	"github.com/labstack/echo/v4"
)

// errorResponse is the failure envelope; successful responses carry the
// entity directly so the wire contract stays plain JSON.
type errorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Detail  interface{} `json:"detail,omitempty"`
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return c.JSON(status, errorResponse{Code: code, Message: message, Detail: detail})
}
