package middleware

import (
	"net/http"
	"strings"

	"github.com/Team-AIEA/cafe-site-sna/internal/auth"
	"github.com/Team-AIEA/cafe-site-sna/internal/models"
	"github.com/Team-AIEA/cafe-site-sna/internal/services"
	"github.com/gin-gonic/gin"
)

// ContextUserKey is the gin context key holding the authenticated admin.
const ContextUserKey = "adminUser"

// RequireAdmin validates the bearer token on the request and resolves it to
// an AdminUser, stored in the context for downstream scope checks.
// Authentication is stateless: every request re-verifies the token.
func RequireAdmin(tokens *auth.TokenService, users services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortForbidden(c, models.MsgAdminRequired)
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		userID, err := tokens.Verify(tokenString)
		if err != nil {
			abortForbidden(c, models.MsgAdminRequired)
			return
		}

		user, err := users.GetUserByID(userID)
		if err != nil {
			abortForbidden(c, models.MsgAdminRequired)
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the admin resolved by RequireAdmin.
func CurrentUser(c *gin.Context) (*models.AdminUser, bool) {
	value, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*models.AdminUser)
	return user, ok
}

func abortForbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, gin.H{"error": message})
	c.Abort()
}
