package handlers

import (
	"errors"
	"net/http"

	"product-slider-backend/internal/models"
	"product-slider-backend/internal/service"
	"product-slider-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	products *service.ProductService
}

func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) Search(c *gin.Context) {
	results, err := h.products.Search(c.Query("term"))
	if err != nil {
		if errors.Is(err, service.ErrSearchTermTooShort) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error(err, "Product search failed", map[string]interface{}{"term": c.Query("term")})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.Create(&req)
	if err != nil {
		if errors.Is(err, service.ErrProductNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error(err, "Failed to create product", map[string]interface{}{"name": req.Name})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}
