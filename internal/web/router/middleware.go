package router

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cuongbtq/workopia-be/internal/web/handler"
	"github.com/cuongbtq/workopia-be/shared/session"
	"github.com/gin-gonic/gin"
)

// LoggerMiddleware logs HTTP requests with slog
func LoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		// Process request
		c.Next()

		latency := time.Since(start)

		logger.Info("HTTP Request",
			slog.Int("status", c.Writer.Status()),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("ip", c.ClientIP()),
			slog.Duration("latency", latency),
			slog.Int("body_size", c.Writer.Size()),
		)

		if len(c.Errors) > 0 {
			for _, e := range c.Errors {
				logger.Error("Request error",
					slog.String("error", e.Error()),
					slog.Uint64("type", uint64(e.Type)),
				)
			}
		}
	}
}

// SessionMiddleware loads the browser session named by the cookie, or
// starts a fresh one, and attaches it to the request context.
func SessionMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *session.Session

		if id, err := c.Cookie(store.CookieName()); err == nil {
			if s, ok := store.Get(id); ok {
				sess = s
			}
		}

		if sess == nil {
			sess = store.New()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(store.CookieName(), sess.ID(), int(store.TTL().Seconds()), "/", "", false, true)
		}

		c.Set(session.ContextKey, sess)
		c.Next()
	}
}

// RequireAuth redirects anonymous users to the login page before the
// handler runs.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := handler.CurrentSession(c)
		if sess == nil || sess.UserID() == 0 {
			if sess != nil {
				sess.SetFlash(session.FlashError, "You must be signed in to do that")
			}
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}

// MethodOverride rewrites a POST carrying a _method form field into the
// PUT or DELETE it tunnels, before the router matches. Browsers only
// submit GET and POST forms. ParseForm caches the parsed body, so the
// downstream handler sees the same PostForm.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost &&
			strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			if err := r.ParseForm(); err == nil {
				switch strings.ToUpper(r.PostForm.Get("_method")) {
				case http.MethodPut:
					r.Method = http.MethodPut
				case http.MethodDelete:
					r.Method = http.MethodDelete
				}
			}
		}

		next.ServeHTTP(w, r)
	})
}
