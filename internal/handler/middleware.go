package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/haatos/algosnip/internal"
	"github.com/haatos/algosnip/internal/service"
	"github.com/labstack/echo/v4"
)

func APIKeyAuth(apiKeyService service.APIKeyServicer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			value := c.Request().Header.Get(internal.APIKeyHeader)
			if value == "" {
				return newError(nil, http.StatusUnauthorized, "missing api key")
			}
			if _, err := apiKeyService.GetAPIKeyByValue(
				c.Request().Context(), value,
			); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return newError(err, http.StatusUnauthorized, "invalid api key")
				}
				return newError(err, http.StatusInternalServerError, "unable to verify api key")
			}
			return next(c)
		}
	}
}
