package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"Community_Hub/internal/repository/postgres"
	"Community_Hub/internal/service"
)

type EventHandler struct {
	svc *service.EventService
}

func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

type CreateEventReq struct {
	CommunityID  uint64     `json:"community_id" binding:"required"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Location     string     `json:"location"`
	EventType    string     `json:"event_type"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	MaxAttendees *int       `json:"max_attendees"`
}

type RSVPReq struct {
	Status string `json:"status" binding:"required,oneof=confirmed cancelled"`
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	event, err := h.svc.Create(userIDFromCtx(c), service.CreateEventInput{
		CommunityID:  req.CommunityID,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		EventType:    req.EventType,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		MaxAttendees: req.MaxAttendees,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"msg": msg(c, "events.missingFields")})
		case errors.Is(err, service.ErrNotMember):
			c.JSON(http.StatusForbidden, gin.H{"msg": msg(c, "feed.notMember")})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"msg": msg(c, "errors.generic")})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": msg(c, "events.created"), "event": event})
}

func (h *EventHandler) ListByCommunity(c *gin.Context) {
	communityID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || communityID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid community id"})
		return
	}
	list, err := h.svc.ListByCommunity(communityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": msg(c, "errors.generic")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *EventHandler) RSVP(c *gin.Context) {
	eventID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req RSVPReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	changed, err := h.svc.RSVP(c.Request.Context(), userIDFromCtx(c), eventID, req.Status)
	if err != nil {
		if errors.Is(err, postgres.ErrEventFull) {
			c.JSON(http.StatusConflict, gin.H{"msg": msg(c, "events.full")})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"msg": msg(c, "errors.generic")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": msg(c, "events.rsvpSaved"), "changed": changed})
}
