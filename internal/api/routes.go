package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/youruser/caseprint/internal/metrics"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.Use(countRequests())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/layouts", h.listModels)
		api.GET("/layouts/:model", h.layoutHandler)
		api.POST("/compose", h.composeHandler)
		api.POST("/preview", h.previewHandler)
		api.POST("/label", h.labelHandler)
		api.POST("/clip/parse", h.clipParseHandler)
		api.GET("/qr", h.qrHandler)
	}
}

func countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
