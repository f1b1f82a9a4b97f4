package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	parse := rg.Group("/parse")
	{
		parse.POST("", h.Parse)
		parse.POST("/batch", h.ParseBatch)
	}
}
