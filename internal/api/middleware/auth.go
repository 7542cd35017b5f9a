package middleware

import (
	"net/http"
	"strings"
	"time"

	"arton360/internal/logger"
	"arton360/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const userContextKey = "current_user"

// Auth resolves the bearer token to a user and stores it in the request
// context. One-time tokens are burned on first use.
func Auth(db *gorm.DB, logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "not_logged_in", "message": "Authentication required"})
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		var token models.AccessToken
		if err := db.First(&token, "token = ?", raw).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "not_logged_in", "message": "Authentication required"})
			return
		}

		if token.OneTime {
			if token.UsedAt != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "not_logged_in", "message": "Token already used"})
				return
			}
			now := time.Now()
			token.UsedAt = &now
			if err := db.Save(&token).Error; err != nil {
				logger.Error("Failed to burn one-time token: %v", err)
			}
		}

		var user models.User
		if err := db.First(&user, "id = ?", token.UserID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "not_logged_in", "message": "Authentication required"})
			return
		}

		c.Set(userContextKey, &user)
		c.Next()
	}
}

// RequireVendor rejects authenticated users without the seller role.
func RequireVendor() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsVendor() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"code": "not_vendor", "message": "User is not a vendor"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil outside Auth.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userContextKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
