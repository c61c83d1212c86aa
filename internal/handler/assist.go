package handler

import (
	"net/http"
	"time"

	"catedra-calendar/internal/calendar"
	"catedra-calendar/internal/logger"
	"catedra-calendar/internal/model"
	"catedra-calendar/internal/service"

	"github.com/gin-gonic/gin"
)

// AssistHandler fronts the generative assistant: voice-to-entry parsing, the
// weekly report and the innovation tip.
type AssistHandler struct {
	ai      *service.AIService
	entries *service.EntryService
}

func NewAssistHandler(ai *service.AIService, entries *service.EntryService) *AssistHandler {
	return &AssistHandler{ai: ai, entries: entries}
}

// Voice never fails: the worst case is the literal utterance dated today.
func (h *AssistHandler) Voice(c *gin.Context) {
	var req model.VoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	today := req.Today
	if _, err := calendar.ParseDay(today); err != nil {
		today = calendar.FormatDay(time.Now())
	}
	c.JSON(http.StatusOK, h.ai.ParseVoice(c.Request.Context(), req.Text, today))
}

// Report summarizes the Monday-started week containing ?date (default now).
func (h *AssistHandler) Report(c *gin.Context) {
	ref := calendar.Noon(time.Now())
	if d := c.Query("date"); d != "" {
		parsed, err := calendar.ParseDay(d)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		ref = parsed
	}

	entries, err := h.entries.List(c.Request.Context())
	if err != nil {
		logger.Warn("report.load failed", "err", err)
		entries = nil
	}

	week := make(map[string]bool, 7)
	for _, cell := range calendar.WeekGrid(ref) {
		week[cell.Day] = true
	}
	var weekEntries []model.Entry
	for _, e := range entries {
		if week[e.Date] {
			weekEntries = append(weekEntries, e)
		}
	}

	report, err := h.ai.WeeklyReport(c.Request.Context(), weekEntries)
	if err != nil {
		// Upstream model failures degrade to a message, not a 500.
		logger.Warn("report.generate failed", "err", err)
		c.JSON(http.StatusOK, gin.H{"report": "", "error": "el asistente no está disponible"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}

func (h *AssistHandler) Tip(c *gin.Context) {
	tip := h.ai.InnovationTip(c.Request.Context())
	if tip == nil {
		c.JSON(http.StatusOK, gin.H{"tip": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tip": tip})
}
