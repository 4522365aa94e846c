package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/haatos/algosnip/internal/service"
	"github.com/haatos/algosnip/internal/store"
	"github.com/labstack/echo/v4"
)

func SetupAPIKeyRoutes(g *echo.Group, apiKeyService service.APIKeyServicer) {
	h := NewAPIKeyHandler(apiKeyService)
	keys := g.Group("/api/keys", APIKeyAuth(apiKeyService))
	keys.GET("", h.GetAPIKeys)
	keys.POST("", h.PostAPIKey)
	keys.DELETE("/:id", h.DeleteAPIKey)
}

type APIKeyHandler struct {
	apiKeyService service.APIKeyServicer
}

func NewAPIKeyHandler(apiKeyService service.APIKeyServicer) *APIKeyHandler {
	return &APIKeyHandler{apiKeyService}
}

type APIKeyResponse struct {
	ID        int64     `json:"id"`
	Value     string    `json:"value"`
	CreatedOn time.Time `json:"created_on"`
}

func toAPIKeyResponse(ak *store.APIKey) APIKeyResponse {
	return APIKeyResponse{ID: ak.ID, Value: ak.Value, CreatedOn: ak.CreatedOn}
}

func (h *APIKeyHandler) GetAPIKeys(c echo.Context) error {
	apiKeys, err := h.apiKeyService.ListAPIKeys(c.Request().Context())
	if err != nil {
		return newError(err, http.StatusInternalServerError, "unable to list api keys")
	}
	res := make([]APIKeyResponse, 0, len(apiKeys))
	for _, ak := range apiKeys {
		res = append(res, toAPIKeyResponse(ak))
	}
	return c.JSON(http.StatusOK, res)
}

func (h *APIKeyHandler) PostAPIKey(c echo.Context) error {
	ak, err := h.apiKeyService.CreateAPIKey(c.Request().Context())
	if err != nil {
		if isUniqueConstraintError(err) {
			return newError(err, http.StatusConflict, "api key already exists")
		}
		return newError(err, http.StatusInternalServerError, "unable to create api key")
	}
	return c.JSON(http.StatusCreated, toAPIKeyResponse(ak))
}

func (h *APIKeyHandler) DeleteAPIKey(c echo.Context) error {
	akp := new(APIKeyParams)
	if err := c.Bind(akp); err != nil {
		return newError(err, http.StatusBadRequest, "invalid api key data")
	}

	if err := h.apiKeyService.DeleteAPIKey(c.Request().Context(), akp.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return newError(err, http.StatusNotFound, "api key not found")
		}
		return newError(err, http.StatusInternalServerError, "unable to delete api key")
	}
	return c.NoContent(http.StatusNoContent)
}
