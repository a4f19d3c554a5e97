package handlers

import (
	"net/http"

	"product-slider-backend/internal/models"
	"product-slider-backend/internal/service"
	"product-slider-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	sliders *service.SliderService
}

func NewSettingsHandler(sliders *service.SliderService) *SettingsHandler {
	return &SettingsHandler{sliders: sliders}
}

func (h *SettingsHandler) GetDefaults(c *gin.Context) {
	defaults, err := h.sliders.GlobalDefaults()
	if err != nil {
		logger.Error(err, "Failed to load global defaults", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load defaults"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"defaults": defaults})
}

func (h *SettingsHandler) UpdateDefaults(c *gin.Context) {
	var req models.UpdateGlobalDefaultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.sliders.UpdateGlobalDefaults(req); err != nil {
		logger.Error(err, "Failed to update global defaults", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update defaults"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Defaults updated"})
}
