package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cuongbtq/workopia-be/shared/session"
	"github.com/gin-gonic/gin"
)

// SessionHandler handles sign-in and sign-out. User accounts live
// outside this service; the login form binds a user id into the
// session so ownership checks have a subject.
type SessionHandler struct {
	logger *slog.Logger
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(deps *Dependencies) *SessionHandler {
	return &SessionHandler{
		logger: deps.Logger,
	}
}

// ShowLogin handles GET /login
func (h *SessionHandler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{
		"Errors": map[string]string{},
	})
}

// Login handles POST /login
func (h *SessionHandler) Login(c *gin.Context) {
	userID, err := strconv.ParseInt(c.PostForm("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		render(c, http.StatusUnprocessableEntity, "login.html", gin.H{
			"Errors": map[string]string{
				"user_id": "User id is required",
			},
		})
		return
	}

	sess := CurrentSession(c)
	sess.SetUser(userID)

	h.logger.Info("User signed in",
		slog.Int64("user_id", userID),
		slog.String("session_id", sess.ID()),
	)

	sess.SetFlash(session.FlashSuccess, "You are now signed in")
	c.Redirect(http.StatusSeeOther, "/listings")
}

// Logout handles POST /logout
func (h *SessionHandler) Logout(c *gin.Context) {
	sess := CurrentSession(c)
	sess.ClearUser()

	sess.SetFlash(session.FlashSuccess, "You have been signed out")
	c.Redirect(http.StatusSeeOther, "/listings")
}
