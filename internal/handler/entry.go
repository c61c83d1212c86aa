package handler

import (
	"errors"
	"net/http"
	"strconv"

	"catedra-calendar/internal/logger"
	"catedra-calendar/internal/model"
	"catedra-calendar/internal/roster"
	"catedra-calendar/internal/service"
	"catedra-calendar/internal/store"

	"github.com/gin-gonic/gin"
)

type EntryHandler struct {
	entries *service.EntryService
	roster  *roster.Roster
}

func NewEntryHandler(entries *service.EntryService, r *roster.Roster) *EntryHandler {
	return &EntryHandler{entries: entries, roster: r}
}

// List returns the whole collection. Clients reload it wholesale after every
// mutation; a gateway failure degrades to an empty list.
func (h *EntryHandler) List(c *gin.Context) {
	entries, err := h.entries.List(c.Request.Context())
	if err != nil {
		logger.Warn("entries.list failed", "err", err)
		entries = []model.Entry{}
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (h *EntryHandler) Create(c *gin.Context) {
	var req model.CreateEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user, ok := currentUser(c, h.roster)
	if !ok {
		return
	}

	created, err := h.entries.CreateRange(c.Request.Context(), user, service.CreateRange{
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Text:         req.Text,
		Type:         req.Type,
		Participants: req.Participants,
	})
	if err != nil {
		// Best-effort batch: some rows may exist even on error, so report
		// the count and let the client re-list.
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrInvalid) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error(), "created": created})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"created": created})
}

func (h *EntryHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req model.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	h.mutation(c, h.entries.Edit(c.Request.Context(), c.GetString("user_name"), id, req))
}

func (h *EntryHandler) Toggle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	h.mutation(c, h.entries.ToggleComplete(c.Request.Context(), c.GetString("user_name"), id))
}

func (h *EntryHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	h.mutation(c, h.entries.Delete(c.Request.Context(), c.GetString("user_name"), id))
}

func (h *EntryHandler) mutation(c *gin.Context, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"ok": true})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "not creator or participant"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
	case errors.Is(err, service.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
