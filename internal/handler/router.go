package handler

import (
	"catedra-calendar/internal/middleware"
	"catedra-calendar/internal/roster"
	"catedra-calendar/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Services bundles everything the router needs.
type Services struct {
	Roster   *roster.Roster
	Entries  *service.EntryService
	Calendar *service.CalendarService
	Board    *service.BoardService
	Tasks    *service.TaskService
	AI       *service.AIService
}

// Router wires all routes. Shared between cmd/server and the handler tests.
func Router(s Services) *gin.Engine {
	authH := NewAuthHandler(s.Roster)
	entryH := NewEntryHandler(s.Entries, s.Roster)
	calH := NewCalendarHandler(s.Calendar, s.Roster)
	boardH := NewBoardHandler(s.Board, s.Roster)
	taskH := NewTaskHandler(s.Tasks)
	assistH := NewAssistHandler(s.AI, s.Entries)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/login", authH.Login)
	r.GET("/api/users", authH.Users)

	api := r.Group("/api", middleware.Session())
	api.GET("/entries", entryH.List)
	api.POST("/entries", entryH.Create)
	api.PUT("/entries/:id", entryH.Update)
	api.POST("/entries/:id/toggle", entryH.Toggle)
	api.DELETE("/entries/:id", entryH.Delete)

	api.GET("/calendar", calH.View)

	api.GET("/board", boardH.Announcement)
	api.PUT("/board", boardH.SetAnnouncement)
	api.GET("/profiles", boardH.Profiles)
	api.PUT("/profiles", boardH.SetProfile)

	api.GET("/tasks", taskH.List)
	api.POST("/tasks", taskH.Add)
	api.POST("/tasks/:id/toggle", taskH.Toggle)
	api.DELETE("/tasks/:id", taskH.Delete)

	api.POST("/assist/voice", assistH.Voice)
	api.GET("/assist/report", assistH.Report)
	api.GET("/assist/tip", assistH.Tip)

	return r
}
