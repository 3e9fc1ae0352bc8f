package cookie

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Session cookie written by the external authentication service.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

// ExtractToken prefers the session cookie and falls back to an Authorization bearer header.
func ExtractToken(c *gin.Context) string {
	if token := GetAccessToken(c); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
