package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"Community_Hub/internal/service"
)

type PollHandler struct {
	svc *service.PollService
}

func NewPollHandler(svc *service.PollService) *PollHandler {
	return &PollHandler{svc: svc}
}

type CreatePollReq struct {
	CommunityID uint64     `json:"community_id" binding:"required"`
	Question    string     `json:"question"`
	PollType    string     `json:"poll_type"`
	IsAnonymous bool       `json:"is_anonymous"`
	ExpiresAt   *time.Time `json:"expires_at"`
	Options     []string   `json:"options"`
}

type VoteReq struct {
	OptionIDs []uint64 `json:"option_ids" binding:"required"`
}

func (h *PollHandler) Create(c *gin.Context) {
	var req CreatePollReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	poll, err := h.svc.Create(userIDFromCtx(c), service.CreatePollInput{
		CommunityID: req.CommunityID,
		Question:    req.Question,
		PollType:    req.PollType,
		IsAnonymous: req.IsAnonymous,
		ExpiresAt:   req.ExpiresAt,
		Options:     req.Options,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTooFewOptions):
			c.JSON(http.StatusBadRequest, gin.H{"msg": msg(c, "polls.tooFewOptions")})
		case errors.Is(err, service.ErrNotMember):
			c.JSON(http.StatusForbidden, gin.H{"msg": msg(c, "feed.notMember")})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"msg": msg(c, "errors.generic")})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": msg(c, "polls.created"), "poll": poll})
}

func (h *PollHandler) ListByCommunity(c *gin.Context) {
	communityID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || communityID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid community id"})
		return
	}
	list, err := h.svc.ListByCommunity(communityID, userIDFromCtx(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": msg(c, "errors.generic")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *PollHandler) Vote(c *gin.Context) {
	pollID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req VoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	err := h.svc.Vote(c.Request.Context(), userIDFromCtx(c), pollID, req.OptionIDs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyVoted):
			c.JSON(http.StatusConflict, gin.H{"msg": msg(c, "polls.alreadyVoted")})
		case errors.Is(err, service.ErrSingleChoice):
			c.JSON(http.StatusBadRequest, gin.H{"msg": msg(c, "polls.singleChoice")})
		case errors.Is(err, service.ErrEmptySelection):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"msg": msg(c, "errors.generic")})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": msg(c, "polls.voteSaved")})
}

func (h *PollHandler) Tally(c *gin.Context) {
	pollID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	total, err := h.svc.Tally(c.Request.Context(), pollID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": msg(c, "errors.generic")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_votes": total})
}
