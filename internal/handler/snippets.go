package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/haatos/algosnip/internal"
	"github.com/haatos/algosnip/internal/service"
	"github.com/haatos/algosnip/internal/store"
	"github.com/labstack/echo/v4"
)

func SetupSnippetRoutes(
	g *echo.Group,
	catalogService service.CatalogServicer,
	apiKeyService service.APIKeyServicer,
) {
	h := NewSnippetHandler(catalogService)
	snippets := g.Group("/api/snippets")
	snippets.GET("", h.GetSnippets)
	snippets.GET("/:name", h.GetSnippet)
	snippets.GET("/:name/bundle", h.GetSnippetBundle)
	g.GET("/api/vscode", h.GetVSCodeSnippets)
	g.POST("/api/rescan", h.PostRescan, APIKeyAuth(apiKeyService))
}

type SnippetHandler struct {
	catalogService service.CatalogServicer
}

func NewSnippetHandler(catalogService service.CatalogServicer) *SnippetHandler {
	return &SnippetHandler{catalogService}
}

type SnippetResponse struct {
	Name       string    `json:"name"`
	Includes   []string  `json:"includes"`
	Body       string    `json:"body"`
	SourcePath string    `json:"source_path"`
	Checksum   string    `json:"checksum"`
	UpdatedOn  time.Time `json:"updated_on"`
}

func toSnippetResponse(s *store.Snippet) SnippetResponse {
	return SnippetResponse{
		Name:       s.Name,
		Includes:   strings.Fields(s.Includes),
		Body:       s.Body,
		SourcePath: s.SourcePath,
		Checksum:   s.Checksum,
		UpdatedOn:  s.UpdatedOn,
	}
}

func (h *SnippetHandler) GetSnippets(c echo.Context) error {
	snippets, err := h.catalogService.ListSnippets(c.Request().Context())
	if err != nil {
		return newError(err, http.StatusInternalServerError, "unable to list snippets")
	}
	res := make([]SnippetResponse, 0, len(snippets))
	for _, s := range snippets {
		res = append(res, toSnippetResponse(s))
	}
	return c.JSON(http.StatusOK, res)
}

func (h *SnippetHandler) GetSnippet(c echo.Context) error {
	sp := new(SnippetParams)
	if err := c.Bind(sp); err != nil {
		return newError(err, http.StatusBadRequest, "invalid snippet name")
	}

	s, err := h.catalogService.GetSnippet(c.Request().Context(), sp.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return newError(err, http.StatusNotFound, "snippet not found")
		}
		return newError(err, http.StatusInternalServerError, "unable to read snippet")
	}
	return c.JSON(http.StatusOK, toSnippetResponse(s))
}

func (h *SnippetHandler) GetSnippetBundle(c echo.Context) error {
	sp := new(SnippetParams)
	if err := c.Bind(sp); err != nil {
		return newError(err, http.StatusBadRequest, "invalid snippet name")
	}

	if _, err := h.catalogService.GetSnippet(c.Request().Context(), sp.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return newError(err, http.StatusNotFound, "snippet not found")
		}
		return newError(err, http.StatusInternalServerError, "unable to read snippet")
	}

	bundle, err := h.catalogService.RenderBundle(c.Request().Context(), sp.Name)
	if err != nil {
		return newError(err, http.StatusInternalServerError, "unable to render bundle")
	}
	return c.String(http.StatusOK, bundle)
}

func (h *SnippetHandler) GetVSCodeSnippets(c echo.Context) error {
	vp := new(VSCodeParams)
	if err := c.Bind(vp); err != nil {
		return newError(err, http.StatusBadRequest, "invalid scope")
	}
	scope := vp.Scope
	if scope == "" && internal.Config != nil {
		scope = internal.Config.Scope
	}

	data, err := h.catalogService.RenderVSCode(c.Request().Context(), scope)
	if err != nil {
		return newError(err, http.StatusInternalServerError, "unable to render snippets")
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}

func (h *SnippetHandler) PostRescan(c echo.Context) error {
	res, err := h.catalogService.Rescan(c.Request().Context())
	if err != nil {
		return newError(err, http.StatusInternalServerError, "unable to rescan snippet sources")
	}
	return c.JSON(http.StatusOK, res)
}
