package handler

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"

	"mathsvc/internal/server"
)

// Assets are embedded so the binary serves its own docs regardless of
// working directory.
var (
	//go:embed static/openapi.json
	openAPISpec []byte

	//go:embed static/docs.html
	docsPage string
)

// OpenAPIHandler serves the API documentation: the OpenAPI document
// itself and a small HTML page that renders it.
type OpenAPIHandler struct {
	Handler
}

// NewOpenAPIHandler constructs an OpenAPIHandler with access to shared
// dependencies.
func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPISpec serves the embedded OpenAPI JSON document.
func (h *OpenAPIHandler) ServeOpenAPISpec(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.JSONBlob(http.StatusOK, openAPISpec)
}

// ServeOpenAPIUI serves the docs UI page. Cache-Control is no-cache so
// doc updates appear immediately.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTML(http.StatusOK, docsPage)
}
