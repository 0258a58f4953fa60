package meta

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the static informational views (about, settings). They have
// no data dependency; the pages are rendered client-side from these shapes.
type Handler struct {
	version string
}

func NewHandler(version string) *Handler {
	return &Handler{version: version}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/about", h.About)
	r.GET("/settings", h.Settings)
}

func (h *Handler) About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Clinic Management API",
		"version":     h.version,
		"description": "Patient records, appointment scheduling and billing",
	})
}

func (h *Handler) Settings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"currency":    "KES",
		"date_format": "YYYY-MM-DD",
		"time_format": "HH:MM",
	})
}
