package handlers

import (
	"net/http"

	"arton360/internal/colorsync"
	"arton360/internal/config"
	"arton360/internal/logger"
	"arton360/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ColorMapHandler serves the per-product color handoff consumed by the
// color-sync front end.
type ColorMapHandler struct {
	db     *gorm.DB
	logger *logger.Logger
	config *config.Config
}

func NewColorMapHandler(db *gorm.DB, logger *logger.Logger, cfg *config.Config) *ColorMapHandler {
	return &ColorMapHandler{
		db:     db,
		logger: logger,
		config: cfg,
	}
}

// Get returns the color-to-image map and the default slug for a designer
// product. Products without designer canvas data are not designer
// products and get a 404.
func (h *ColorMapHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	if !isDesignerProduct(&product) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not a designer product"})
		return
	}

	defaultSlug := product.DefaultAttributes[h.config.ColorTaxonomy]
	if defaultSlug == "" {
		defaultSlug = h.config.DefaultColorSlug
	}

	c.JSON(http.StatusOK, colorsync.Config{
		Map:            h.config.ColorImageMap(),
		DefaultSlug:    defaultSlug,
		ColorAttribute: "attribute_" + h.config.ColorTaxonomy,
	})
}

func isDesignerProduct(p *models.Product) bool {
	return p.CanvasJSON != "" && p.CanvasJSON != "null"
}
