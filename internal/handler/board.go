package handler

import (
	"errors"
	"net/http"
	"time"

	"catedra-calendar/internal/logger"
	"catedra-calendar/internal/model"
	"catedra-calendar/internal/roster"
	"catedra-calendar/internal/service"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	board  *service.BoardService
	roster *roster.Roster
}

func NewBoardHandler(board *service.BoardService, r *roster.Roster) *BoardHandler {
	return &BoardHandler{board: board, roster: r}
}

func (h *BoardHandler) Announcement(c *gin.Context) {
	text, err := h.board.Announcement(c.Request.Context())
	if err != nil {
		logger.Warn("board.get failed", "err", err)
		text = ""
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

func (h *BoardHandler) SetAnnouncement(c *gin.Context) {
	var req model.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user, ok := currentUser(c, h.roster)
	if !ok {
		return
	}
	err := h.board.SetAnnouncement(c.Request.Context(), user, req.Text)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"ok": true})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "profile cannot edit the board"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *BoardHandler) Profiles(c *gin.Context) {
	views, err := h.board.Profiles(c.Request.Context(), time.Now())
	if err != nil {
		logger.Warn("profiles.list failed", "err", err)
		views = []model.ProfileView{}
	}
	if views == nil {
		views = []model.ProfileView{}
	}
	c.JSON(http.StatusOK, views)
}

func (h *BoardHandler) SetProfile(c *gin.Context) {
	var req model.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user, ok := currentUser(c, h.roster)
	if !ok {
		return
	}
	err := h.board.SetProfile(c.Request.Context(), user, req.EndDate)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"ok": true})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "only editors track progress"})
	case errors.Is(err, service.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
