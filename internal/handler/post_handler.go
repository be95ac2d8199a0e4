package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"Community_Hub/internal/service"
)

type PostHandler struct {
	svc *service.PostService
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

type CreatePostReq struct {
	CommunityID uint64  `json:"community_id" binding:"required"`
	CategoryID  *uint64 `json:"category_id"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	post, pending, err := h.svc.Create(userIDFromCtx(c), service.CreatePostInput{
		CommunityID: req.CommunityID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Content:     req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyFields):
			c.JSON(http.StatusBadRequest, gin.H{"msg": msg(c, "feed.emptyFields")})
		case errors.Is(err, service.ErrNotMember):
			c.JSON(http.StatusForbidden, gin.H{"msg": msg(c, "feed.notMember")})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"msg": msg(c, "errors.generic")})
		}
		return
	}
	key := "feed.postCreated"
	if pending {
		key = "feed.postPendingApproval"
	}
	c.JSON(http.StatusOK, gin.H{"msg": msg(c, key), "id": post.ID, "pending": pending})
}

func (h *PostHandler) ListByCommunity(c *gin.Context) {
	communityID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || communityID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid community id"})
		return
	}
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	list, err := h.svc.ListByCommunity(communityID, page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": msg(c, "errors.generic")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *PostHandler) ListPending(c *gin.Context) {
	communityID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	list, err := h.svc.ListPending(userIDFromCtx(c), communityID)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *PostHandler) Approve(c *gin.Context) {
	postID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.svc.Approve(userIDFromCtx(c), postID); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *PostHandler) Pin(c *gin.Context) {
	postID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	pinned := c.Query("pinned") != "false"
	if err := h.svc.SetPinned(userIDFromCtx(c), postID, pinned); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *PostHandler) Delete(c *gin.Context) {
	postID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.svc.Delete(userIDFromCtx(c), postID); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}
