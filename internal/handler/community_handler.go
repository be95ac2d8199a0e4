package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"Community_Hub/internal/model"
	"Community_Hub/internal/service"
)

type CommunityHandler struct {
	svc *service.CommunityService
}

func NewCommunityHandler(svc *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{svc: svc}
}

type CommunityCreateReq struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	LogoURL     string          `json:"logo_url"`
	MaxMembers  *int            `json:"max_members"`
	Settings    *model.Settings `json:"settings"`
}

type CommunityIDReq struct {
	CommunityID uint64 `json:"community_id" binding:"required"`
}

func (h *CommunityHandler) Create(c *gin.Context) {
	var req CommunityCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	community, err := h.svc.Create(userIDFromCtx(c), service.CreateCommunityInput{
		Name:        req.Name,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		MaxMembers:  req.MaxMembers,
		Settings:    req.Settings,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": msg(c, "community.created"), "community": community})
}

func (h *CommunityHandler) Join(c *gin.Context) {
	var req CommunityIDReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	status, err := h.svc.Join(c.Request.Context(), userIDFromCtx(c), req.CommunityID)
	if err != nil {
		if errors.Is(err, service.ErrCommunityFull) {
			c.JSON(http.StatusConflict, gin.H{"msg": msg(c, "community.full")})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"msg": msg(c, "errors.generic")})
		return
	}
	key := "community.joined"
	if status == model.MemberPending {
		key = "community.pending"
	}
	c.JSON(http.StatusOK, gin.H{"msg": msg(c, key), "status": status})
}

func (h *CommunityHandler) Leave(c *gin.Context) {
	var req CommunityIDReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if err := h.svc.Leave(c.Request.Context(), userIDFromCtx(c), req.CommunityID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": msg(c, "errors.generic")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": msg(c, "community.left")})
}

func (h *CommunityHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	list, err := h.svc.List(page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": msg(c, "errors.generic")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *CommunityHandler) ListMine(c *gin.Context) {
	list, err := h.svc.ListMine(userIDFromCtx(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": msg(c, "errors.generic")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *CommunityHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	detail, err := h.svc.GetBySlug(slug, userIDFromCtx(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": msg(c, "errors.generic")})
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": msg(c, "community.notFound")})
		return
	}
	c.JSON(http.StatusOK, detail)
}
