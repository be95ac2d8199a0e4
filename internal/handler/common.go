package handler

import (
	"github.com/gin-gonic/gin"

	"Community_Hub/internal/middleware"
	"Community_Hub/internal/pkg"
)

func userIDFromCtx(c *gin.Context) uint64 {
	if v, ok := c.Get(middleware.ContextUserIDKey); ok {
		if id, ok2 := v.(uint64); ok2 {
			return id
		}
	}
	return 0
}

func langFromCtx(c *gin.Context) string {
	if v, ok := c.Get(middleware.ContextLangKey); ok {
		if lang, ok2 := v.(string); ok2 {
			return lang
		}
	}
	return "es"
}

// msg localizes a catalog key for the current request.
func msg(c *gin.Context, key string) string {
	return pkg.T(langFromCtx(c), key, nil)
}
