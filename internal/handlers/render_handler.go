package handlers

import (
	"net/http"

	"product-slider-backend/internal/models"
	"product-slider-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type RenderHandler struct {
	service *service.RenderService
}

func NewRenderHandler(service *service.RenderService) *RenderHandler {
	return &RenderHandler{service: service}
}

// Render serves the public slider fragment. Error states return 200 with
// either an empty body or an inline message depending on the caller's edit
// permission; a broken slider must never break the embedding page.
func (h *RenderHandler) Render(c *gin.Context) {
	canEdit := c.GetBool("can_edit")

	state, html := h.service.Render(c.Param("id"), canEdit)

	c.Header("X-Slider-State", string(state))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// Preview renders an unsaved admin form. The caller is always an admin, so
// failures come back as structured errors instead of empty fragments.
func (h *RenderHandler) Preview(c *gin.Context) {
	var req models.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	html, err := h.service.Preview(req.Form)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"html": html})
}
