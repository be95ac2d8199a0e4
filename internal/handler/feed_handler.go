package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Community_Hub/internal/service"
)

type FeedHandler struct {
	svc *service.FeedService
}

func NewFeedHandler(svc *service.FeedService) *FeedHandler {
	return &FeedHandler{svc: svc}
}

func (h *FeedHandler) Load(c *gin.Context) {
	feed, err := h.svc.Load(userIDFromCtx(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": msg(c, "errors.generic")})
		return
	}
	c.JSON(http.StatusOK, feed)
}
