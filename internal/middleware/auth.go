package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rakibdev/takealot-server/internal/pkg/response"
	"github.com/rakibdev/takealot-server/internal/pkg/token"
)

const unauthorizedMessage = "Unauthorized Access"

// Auth extracts the bearer token from the Authorization header, verifies it
// and stores the decoded identity in the request context.
func Auth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, unauthorizedMessage)
			c.Abort()
			return
		}

		// The token is whatever follows the scheme, "Bearer" or otherwise
		_, tokenString, found := strings.Cut(authHeader, " ")
		if !found {
			tokenString = authHeader
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			response.Unauthorized(c, unauthorizedMessage)
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// RequireSelf only admits requests whose token subject matches the :id path
// segment. It must run after Auth.
func RequireSelf() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("userID") != c.Param("id") {
			response.Forbidden(c, "You can only modify your own account")
			c.Abort()
			return
		}
		c.Next()
	}
}
