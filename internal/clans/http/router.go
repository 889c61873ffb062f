package http

import "github.com/gin-gonic/gin"

// Register attaches clan routes to the given router group.
func (h *Handler) Register(rg gin.IRouter) {
	rg.POST("/clans", h.create)
	rg.GET("/clans", h.list)
	rg.GET("/clans/search", h.search)
	rg.DELETE("/clans/:id", h.delete)
}
