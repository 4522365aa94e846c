package handler

import (
	"net/http"

	"github.com/haatos/algosnip/internal"
	"github.com/haatos/algosnip/internal/service"
	"github.com/labstack/echo/v4"
)

func SetupConfigRoutes(g *echo.Group, apiKeyService service.APIKeyServicer) {
	h := NewConfigHandler()
	config := g.Group("/api/config", APIKeyAuth(apiKeyService))
	config.GET("", h.GetConfig)
	config.PUT("", h.PutConfig)
}

type ConfigHandler struct{}

func NewConfigHandler() *ConfigHandler {
	return &ConfigHandler{}
}

func (h *ConfigHandler) GetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, internal.Config)
}

func (h *ConfigHandler) PutConfig(c echo.Context) error {
	cp := new(ConfigParams)
	if err := c.Bind(cp); err != nil {
		return newError(err, http.StatusBadRequest, "invalid config data")
	}

	config := &internal.Configuration{
		RescanIntervalHours: internal.NewHoursDuration(cp.RescanIntervalHours),
		Scope:               cp.Scope,
	}
	if err := internal.UpdateConfiguration(config); err != nil {
		return newError(
			err,
			http.StatusInternalServerError,
			"unable to update configuration file",
		)
	}
	return c.JSON(http.StatusOK, internal.Config)
}
