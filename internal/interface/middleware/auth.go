package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/formgate/formgate/pkg/helpers"
	"github.com/formgate/formgate/pkg/response"
)

// AuthHeader is the request header carrying the bearer token, as
// "<scheme> <token>". Only the second whitespace-separated part is used.
const AuthHeader = "X-Auth-Token"

const CtxUserIDKey = "userID"

// Auth extracts and validates the session token and injects the user ID
// into the Gin context. A missing header is a plain 401, same as any other
// failure. The literal string "null" is rejected explicitly: it is what
// broken clients serialize an absent token into.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(AuthHeader)
		if header == "" {
			response.AbortError(c, http.StatusUnauthorized, "Token is required", nil)
			return
		}
		parts := strings.Fields(header)
		if len(parts) < 2 {
			response.AbortError(c, http.StatusUnauthorized, "Token is required", nil)
			return
		}
		token := parts[1]
		if token == "null" {
			response.AbortError(c, http.StatusUnauthorized, "Token is null", nil)
			return
		}
		claims, err := jwt.ParseToken(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Token is invalid", nil)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
