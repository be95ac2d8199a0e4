package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"Community_Hub/internal/pkg"
	"Community_Hub/internal/repository/redis"
)

const (
	ContextUserIDKey = "user_id"
	ContextLangKey   = "lang"
)

// AuthMiddleware validates the bearer token and checks it is the user's
// single pinned session; a login elsewhere invalidates this one.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid authorization format"})
			c.Abort()
			return
		}

		tokenStr := parts[1]
		sessions := &redis.SessionRepository{}

		claims, err := pkg.ParseAccess(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid or expired token"})
			c.Abort()
			return
		}

		current, err := sessions.GetToken(claims.UserID)
		if err != nil || current != tokenStr {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "account logged in elsewhere"})
			c.Abort()
			return
		}

		if err = sessions.ExtendToken(claims.UserID); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// LangMiddleware resolves the response language from Accept-Language;
// es is the default, fr the only alternative.
func LangMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := "es"
		if strings.HasPrefix(c.GetHeader("Accept-Language"), "fr") {
			lang = "fr"
		}
		c.Set(ContextLangKey, lang)
		c.Next()
	}
}
