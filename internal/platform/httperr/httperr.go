// Package httperr renders handler errors as JSON bodies of the form
// {"error": "...", "fields": [...]}.
package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hospital/records/internal/platform/validate"
)

type Body struct {
	Error  string                `json:"error"`
	Fields []validate.FieldError `json:"fields,omitempty"`
}

// Render maps err to a status code and response body. Errors that are not
// validation or HTTP errors are reported as 500 without their detail.
func Render(err error) (int, Body) {
	var verrs *validate.Errors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, Body{Error: "validation failed", Fields: verrs.Fields}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, ok := he.Message.(string)
		if !ok {
			msg = fmt.Sprint(he.Message)
		}
		return he.Code, Body{Error: msg}
	}

	return http.StatusInternalServerError, Body{Error: "internal server error"}
}

// Handler returns an echo.HTTPErrorHandler that writes Render's output and
// logs server-side failures.
func Handler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := Render(err)
		if code >= http.StatusInternalServerError {
			rid, _ := c.Get("request_id").(string)
			logger.Error().Err(err).
				Str("request_id", rid).
				Str("path", c.Request().URL.Path).
				Int("status", code).
				Msg("request failed")
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(code)
		} else {
			werr = c.JSON(code, body)
		}
		if werr != nil {
			logger.Error().Err(werr).Msg("write error response")
		}
	}
}
