package handler

import (
	"net/http"

	"catedra-calendar/internal/logger"
	"catedra-calendar/internal/middleware"
	"catedra-calendar/internal/model"
	"catedra-calendar/internal/roster"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ roster *roster.Roster }

func NewAuthHandler(r *roster.Roster) *AuthHandler { return &AuthHandler{roster: r} }

// Login is profile selection, not authentication: the roster is the whole
// credential. Roles are client-trusted by design.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, ok := h.roster.ByEmail(req.Email)
	if !ok {
		logger.Warn("login.unknown", "email", req.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown profile"})
		return
	}

	token, err := middleware.IssueToken(u.ID, u.Name, u.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("login.ok", "uid", u.ID, "name", u.Name)
	c.JSON(http.StatusOK, model.LoginResponse{Token: token, User: u})
}

func (h *AuthHandler) Users(c *gin.Context) {
	c.JSON(http.StatusOK, h.roster.Users())
}

// currentUser resolves the session identity back to its roster record.
func currentUser(c *gin.Context, r *roster.Roster) (roster.User, bool) {
	u, ok := r.ByName(c.GetString("user_name"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "profile no longer in roster"})
	}
	return u, ok
}
