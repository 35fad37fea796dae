package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	render *Renderer
}

func NewPageHandler(render *Renderer) *PageHandler {
	return &PageHandler{render: render}
}

// Hello handles GET /hello and GET /hello/:name
func (h *PageHandler) Hello(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "hello.html", gin.H{
		"Name": c.Param("name"),
	})
}

// NotFound handles every unmatched route.
func (h *PageHandler) NotFound(c *gin.Context) {
	h.render.NotFound(c)
}
