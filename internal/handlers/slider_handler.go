package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"product-slider-backend/internal/models"
	"product-slider-backend/internal/service"
	"product-slider-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SliderHandler struct {
	service *service.SliderService
}

func NewSliderHandler(service *service.SliderService) *SliderHandler {
	return &SliderHandler{service: service}
}

func (h *SliderHandler) Create(c *gin.Context) {
	var req models.CreateSliderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slider, err := h.service.Create(req)
	if err != nil {
		logger.Error(err, "Failed to create slider", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"slider": slider})
}

func (h *SliderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	sliders, total, err := h.service.List(page, limit, status)
	if err != nil {
		logger.Error(err, "Failed to list sliders", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sliders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sliders": sliders,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

func (h *SliderHandler) Get(c *gin.Context) {
	id, ok := sliderID(c)
	if !ok {
		return
	}

	slider, settings, err := h.service.Get(id)
	if err != nil {
		h.respondError(c, err, id, "Failed to load slider")
		return
	}

	c.JSON(http.StatusOK, gin.H{"slider": slider, "settings": settings})
}

func (h *SliderHandler) Save(c *gin.Context) {
	id, ok := sliderID(c)
	if !ok {
		return
	}

	var req models.SaveSliderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Save(id, req); err != nil {
		h.respondError(c, err, id, "Failed to save slider")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Slider saved"})
}

func (h *SliderHandler) UpdateStatus(c *gin.Context) {
	id, ok := sliderID(c)
	if !ok {
		return
	}

	var req models.UpdateSliderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.SetStatus(id, req.Status); err != nil {
		h.respondError(c, err, id, "Failed to update slider status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

func (h *SliderHandler) Delete(c *gin.Context) {
	id, ok := sliderID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.respondError(c, err, id, "Failed to delete slider")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Slider deleted"})
}

func (h *SliderHandler) respondError(c *gin.Context, err error, id uint, msg string) {
	if errors.Is(err, service.ErrSliderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Slider not found"})
		return
	}
	logger.Error(err, msg, map[string]interface{}{"slider_id": id})
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

func sliderID(c *gin.Context) (uint, bool) {
	value, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || value == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slider ID"})
		return 0, false
	}
	return uint(value), true
}
