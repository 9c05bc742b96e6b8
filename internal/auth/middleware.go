package auth

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the caller id when the gateway has already authenticated the request.
const UserIDHeader = "X-Sharer-User-Id"

// AuthRequired is a Gin middleware that identifies the caller either from
// Authorization: Bearer <token> (when jwtManager is non-nil) or from the
// trusted user-id header.
func AuthRequired(jwtManager *JWTManager, trustHeader bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" && jwtManager != nil {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "invalid Authorization header format",
				})
				return
			}

			userID, err := jwtManager.ParseAndValidate(parts[1])
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "invalid or expired token",
				})
				return
			}

			SetUserID(c, userID)
			c.Next()
			return
		}

		if trustHeader {
			raw := c.GetHeader(UserIDHeader)
			if raw == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "missing " + UserIDHeader + " header",
				})
				return
			}
			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || userID <= 0 {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"error": "invalid " + UserIDHeader + " header",
				})
				return
			}

			SetUserID(c, userID)
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
	}
}
