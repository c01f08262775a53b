package handler

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/flight-itinerary/internal/server"
)

//go:embed static
var staticFiles embed.FS

// OpenAPIHandler serves the API documentation: an HTML UI that loads its
// scripts from a CDN and renders static/openapi.json.
//
// Both files are embedded so the binary does not depend on its working
// directory.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI serves static/openapi.html.
//
// Cache-Control is set to "no-cache" so clients do not reuse old docs.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	templateBytes, err := staticFiles.ReadFile("static/openapi.html")

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}

// StaticFS exposes the embedded static directory, rooted at its contents,
// for mounting under /static.
func (h *OpenAPIHandler) StaticFS() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// Only fails for an invalid path, which is a compile-time constant here.
		panic(err)
	}
	return sub
}
