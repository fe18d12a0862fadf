package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"weddy/pkg/utils"
)

const (
	CtxUserID  = "user_id"
	CtxGroupID = "group_id"
	CtxRole    = "role"

	RoleAdmin = "admin"
)

func JWTAuthMiddleware(issuer *utils.TokenIssuer) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := issuer.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// group_id may be empty for users who have not paired yet; registry
		// calls reject that with ErrUnauthenticated.
		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxGroupID, claims.GroupID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

func RoleMiddleware(requiredRole string) gin.HandlerFunc {

	return func(c *gin.Context) {
		role := c.GetString(CtxRole)

		if role != requiredRole {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
