package web

import (
	"net/http"
	"time"

	"ewizz-console/internal/backend"
	"ewizz-console/internal/logger"
	"ewizz-console/internal/session"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs method, path, client and latency for every request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("[%s] %s %s %v", c.Request.Method, path, c.ClientIP(), time.Since(start))
	}
}

// WithSession resolves the session cookie, if any, and parks the record in
// the request context. It never blocks a request by itself.
func WithSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(session.CookieName); err == nil {
			if rec, ok := store.Load(token); ok {
				c.Set(session.ContextKey, rec)
			}
		}
		c.Next()
	}
}

// RequireRole guards a shell. A missing session goes to the login page; a
// session with the wrong role is redirected to its own shell instead of
// getting an error page.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(session.ContextKey)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		rec := v.(*session.Record)
		if rec.Role != role {
			if rec.Role == backend.RoleAdmin {
				c.Redirect(http.StatusFound, "/admin")
			} else {
				c.Redirect(http.StatusFound, "/dashboard")
			}
			c.Abort()
			return
		}
		c.Next()
	}
}
