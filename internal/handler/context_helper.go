package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nctu-sis/portal-api/internal/middleware"
	"github.com/nctu-sis/portal-api/internal/models"
)

// currentClaims extracts the authenticated principal's claims from the gin
// context, if a JWT middleware set them.
func currentClaims(c *gin.Context) (*models.JWTClaims, bool) {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*models.JWTClaims)
	return claims, ok
}
