package handlers

import (
	"net/http"
	"strconv"

	"arton360/internal/api/middleware"
	"arton360/internal/logger"
	"arton360/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductHandler struct {
	db     *gorm.DB
	logger *logger.Logger
}

func NewProductHandler(db *gorm.DB, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{
		db:     db,
		logger: logger,
	}
}

// List returns the authenticated vendor's own products.
func (h *ProductHandler) List(c *gin.Context) {
	vendor := middleware.CurrentUser(c)

	var products []models.Product

	// Pagination
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := h.db.Model(&models.Product{}).Where("vendor_id = ?", vendor.ID)

	if search := c.Query("search"); search != "" {
		query = query.Where("title LIKE ? OR sku LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	query.Count(&total)

	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": products,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// Get returns one of the vendor's products with its variations.
func (h *ProductHandler) Get(c *gin.Context) {
	vendor := middleware.CurrentUser(c)
	id := c.Param("id")

	var product models.Product
	if err := h.db.First(&product, "id = ? AND vendor_id = ?", id, vendor.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	if err := h.db.Where("product_id = ?", product.ID).Order("position asc").Find(&product.Variations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch variations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}
