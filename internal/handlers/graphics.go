package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	g "maragu.dev/gomponents"

	"ayasaad.dev/internal/graphics"
	"ayasaad.dev/internal/middleware"
)

// Standalone graphic bounds, in pixels
const (
	minGraphicSize = 16
	maxGraphicSize = 2048
)

const svgNS = `xmlns="http://www.w3.org/2000/svg"`

// GraphicsHandler serves registry scenes as standalone SVG documents
type GraphicsHandler struct{}

// NewGraphicsHandler creates a new GraphicsHandler
func NewGraphicsHandler() *GraphicsHandler {
	return &GraphicsHandler{}
}

// GetGraphic handles GET /graphics/{name}
func (h *GraphicsHandler) GetGraphic(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var node g.Node
	if name == "abstract-curve" {
		size := clamp(parseIntParam(r, "size", graphics.DefaultCurveSize), minGraphicSize, maxGraphicSize)
		node = graphics.AbstractCurve(graphics.CurveProps{
			Size:    float64(size),
			Variant: graphics.Variant(r.URL.Query().Get("variant")),
		})
	} else {
		component, ok := graphics.Lookup(name)
		if !ok {
			respondError(w, r, http.StatusNotFound, "Graphic not found")
			return
		}
		node = component(graphics.Props{
			Width:  dimension(r, "width"),
			Height: dimension(r, "height"),
		})
	}

	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		middleware.GetLogger(r.Context()).Error("failed to render graphic", "name", name, "error", err)
		respondError(w, r, http.StatusInternalServerError, "Failed to render graphic")
		return
	}

	out := buf.Bytes()
	if !bytes.Contains(out, []byte(svgNS)) {
		out = bytes.Replace(out, []byte("<svg"), []byte("<svg "+svgNS), 1)
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(out)
}

// dimension reads a pixel size param, empty when absent so the scene default applies
func dimension(r *http.Request, name string) string {
	v := parseIntParam(r, name, 0)
	if v <= 0 {
		return ""
	}
	return strconv.Itoa(clamp(v, minGraphicSize, maxGraphicSize))
}
