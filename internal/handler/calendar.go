package handler

import (
	"net/http"
	"strings"
	"time"

	"catedra-calendar/internal/calendar"
	"catedra-calendar/internal/roster"
	"catedra-calendar/internal/service"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	cal    *service.CalendarService
	roster *roster.Roster
}

func NewCalendarHandler(cal *service.CalendarService, r *roster.Roster) *CalendarHandler {
	return &CalendarHandler{cal: cal, roster: r}
}

// View serves the render intent for one period.
//
// GET /api/calendar?date=2024-06-15&view=week&persons=África,Jaime&search=feria
//
// date defaults to today, view to month, persons to the whole roster.
func (h *CalendarHandler) View(c *gin.Context) {
	now := time.Now()

	ref := calendar.Noon(now)
	if d := c.Query("date"); d != "" {
		parsed, err := calendar.ParseDay(d)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		ref = parsed
	}

	view := calendar.ViewMonth
	if c.Query("view") == string(calendar.ViewWeek) {
		view = calendar.ViewWeek
	}

	persons := h.roster.Names()
	if p := c.Query("persons"); p != "" {
		persons = strings.Split(p, ",")
	}

	f := calendar.FilterState{Persons: persons, Search: c.Query("search")}
	c.JSON(http.StatusOK, h.cal.View(c.Request.Context(), ref, view, f, now))
}
