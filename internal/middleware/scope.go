package middleware

import (
	"github.com/Team-AIEA/cafe-site-sna/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireSuperuser rejects admins without the superuser flag. Must run
// after RequireAdmin.
func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortForbidden(c, models.MsgAdminRequired)
			return
		}
		if !user.Superuser {
			abortForbidden(c, models.MsgSuperRequired)
			return
		}
		c.Next()
	}
}

// CheckScope aborts with 403 unless the authenticated admin may act on
// resources of the given restaurant. It returns false when aborted so
// handlers can bail out early.
func CheckScope(c *gin.Context, restaurantID uint) bool {
	user, ok := CurrentUser(c)
	if !ok {
		abortForbidden(c, models.MsgAdminRequired)
		return false
	}
	if !user.CanAccess(restaurantID) {
		abortForbidden(c, models.MsgSuperRequired)
		return false
	}
	return true
}
