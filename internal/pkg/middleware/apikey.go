package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pocketpay/pocketpay/internal/utils"
)

const (
	// APIKeyHeader is the header carrying the service-to-service key
	APIKeyHeader = "X-API-Key"
)

// ValidateAPIKey middleware validates the API key for service-to-service
// communication. Internal endpoints never carry end-user credentials; the
// caller's identity is the calling service itself.
func ValidateAPIKey(allowedKeys ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			validKey := false
			for _, key := range allowedKeys {
				if key != "" && strings.EqualFold(apiKey, key) {
					validKey = true
					break
				}
			}

			if !validKey {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
