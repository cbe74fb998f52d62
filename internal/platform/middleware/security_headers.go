package middleware

import (
	"github.com/labstack/echo/v4"
)

const hstsValue = "max-age=31536000; includeSubDomains"

// SecurityHeaders stamps the headers every JSON response carries. Bodies hold
// patient data, so nothing is cacheable or embeddable. hsts adds
// Strict-Transport-Security and belongs only to deployments behind TLS.
func SecurityHeaders(hsts bool) echo.MiddlewareFunc {
	headers := map[string]string{
		echo.HeaderXContentTypeOptions:   "nosniff",
		echo.HeaderXFrameOptions:         "DENY",
		echo.HeaderContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'",
		echo.HeaderReferrerPolicy:        "no-referrer",
		echo.HeaderCacheControl:          "no-store",
	}
	if hsts {
		headers[echo.HeaderStrictTransportSecurity] = hstsValue
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			for k, v := range headers {
				h.Set(k, v)
			}
			return next(c)
		}
	}
}
