package handler

import "github.com/labstack/echo/v4"

// response is the uniform JSON envelope used for every API response, success
// or failure. HTTP status carries the primary signal; Errors carries
// field-level validation messages when present.
type response struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// respond writes a success envelope.
func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, response{Success: true, Message: message, Data: data})
}

// pageResponse is the shared pagination wrapper for list endpoints.
// Pages is ceil(total/limit).
type pageResponse struct {
	Data   any   `json:"data"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Pages  int   `json:"pages"`
}
