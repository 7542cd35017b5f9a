package handlers

import (
	"errors"
	"net/http"

	"arton360/internal/api/middleware"
	"arton360/internal/designer"
	"arton360/internal/logger"

	"github.com/gin-gonic/gin"
)

type DesignHandler struct {
	service *designer.Service
	logger  *logger.Logger
}

func NewDesignHandler(service *designer.Service, logger *logger.Logger) *DesignHandler {
	return &DesignHandler{
		service: service,
		logger:  logger,
	}
}

// Save accepts a design submission from the designer front-end and creates
// a new catalog product.
func (h *DesignHandler) Save(c *gin.Context) {
	vendor := middleware.CurrentUser(c)

	var sub designer.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": designer.KindBadRequest, "message": "Invalid JSON body"})
		return
	}

	result, err := h.service.SaveDesign(c.Request.Context(), vendor, &sub)
	if err != nil {
		var derr *designer.Error
		if errors.As(err, &derr) {
			c.JSON(derr.Status, gin.H{"code": derr.Kind, "message": derr.Message})
			return
		}
		h.logger.Error("save-design failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "message": "Failed to save design"})
		return
	}

	c.JSON(http.StatusOK, result)
}
