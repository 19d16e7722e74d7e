package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CustomErrorHandler renders every error as the JSON shape the
// front-end expects: {"detail": "..."}.
func CustomErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	detail := "Something went wrong. Please try again later."

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok && msg != "" {
			detail = msg
		} else {
			switch code {
			case http.StatusNotFound:
				detail = "Resource not found"
			case http.StatusUnauthorized:
				detail = "Unauthorized"
			case http.StatusUnprocessableEntity:
				detail = "Invalid request payload"
			}
		}
	}

	c.Logger().Error(err)

	if c.Response().Committed {
		return
	}
	if err := c.JSON(code, map[string]string{"detail": detail}); err != nil {
		c.Logger().Error(err)
	}
}
