package handlers

import (
	"net/http"

	"ewizz-console/internal/backend"
	"ewizz-console/internal/logger"
	"ewizz-console/internal/session"
	"ewizz-console/internal/view"

	"github.com/gin-gonic/gin"
)

// sessions survive until logout, so the cookie gets a long shelf life
const sessionCookieMaxAge = 365 * 24 * 3600

type AuthHandler struct {
	api   *backend.Client
	store *session.Store
}

func NewAuthHandler(api *backend.Client, store *session.Store) *AuthHandler {
	return &AuthHandler{api: api, store: store}
}

type authPage struct {
	Flash string
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if CurrentUser(c) != nil {
		HomeRedirect(c)
		return
	}
	c.HTML(http.StatusOK, "login.html", authPage{Flash: view.TakeFlash(c)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	res, err := h.api.Login(c.Request.Context(), username, password)
	if err != nil {
		flashError(c, err)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	token, err := h.store.Save(res.UserID, res.Username, res.Role)
	if err != nil {
		logger.Error("save session: %v", err)
		view.Flash(c, genericErrorMsg)
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.SetCookie(session.CookieName, token, sessionCookieMaxAge, "/", "", false, true)

	if res.Role == backend.RoleAdmin {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil {
		if err := h.store.Clear(token); err != nil {
			logger.Warn("clear session: %v", err)
		}
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	if CurrentUser(c) != nil {
		HomeRedirect(c)
		return
	}
	c.HTML(http.StatusOK, "register.html", authPage{Flash: view.TakeFlash(c)})
}

func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if err := h.api.Register(c.Request.Context(), username, password); err != nil {
		flashError(c, err)
		c.Redirect(http.StatusFound, "/register")
		return
	}
	view.Flash(c, "Account created. You can sign in now.")
	c.Redirect(http.StatusFound, "/login")
}
