package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"tripbill-be-svc/internal/models"
	"tripbill-be-svc/internal/service"
	"tripbill-be-svc/pkg/utils"
)

// Context key under which the authenticated user is stored
const ContextUserKey = "current_user"

// RequireAuth validates the bearer token and loads the authenticated
// user into the request context. The token's tenant claim must match the
// stored user record.
func RequireAuth(jwtSecret string, userService service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.UnauthorizedResponse(c, "Could not validate credentials")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			utils.UnauthorizedResponse(c, "Could not validate credentials")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.UnauthorizedResponse(c, "Could not validate credentials")
			c.Abort()
			return
		}

		email, _ := claims["sub"].(string)
		tenantID, hasTenant := claims["tenant_id"].(float64)
		if email == "" || !hasTenant {
			utils.UnauthorizedResponse(c, "Could not validate credentials")
			c.Abort()
			return
		}

		user, err := userService.GetUserByEmail(email)
		if err != nil || user.TenantID != uint(tenantID) {
			utils.UnauthorizedResponse(c, "Could not validate credentials")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireRole rejects authenticated users whose role is not in the given
// set. Admins always pass.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			utils.UnauthorizedResponse(c, "Could not validate credentials")
			c.Abort()
			return
		}
		if user.IsAdmin {
			c.Next()
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		utils.ForbiddenResponse(c, "Insufficient permissions")
		c.Abort()
	}
}

// CurrentUser returns the authenticated user from the request context,
// nil when unauthenticated
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}
