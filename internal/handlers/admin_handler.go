package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"ewizz-console/internal/backend"
	"ewizz-console/internal/session"
	"ewizz-console/internal/view"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	api *backend.Client
}

func NewAdminHandler(api *backend.Client) *AdminHandler {
	return &AdminHandler{api: api}
}

type adminPage struct {
	User      *session.Record
	Flash     string
	Users     []backend.User
	ConfirmID string
}

func (h *AdminHandler) Show(c *gin.Context) {
	page := adminPage{
		User:  CurrentUser(c),
		Flash: view.TakeFlash(c),
	}

	users, err := h.api.AdminUsers(c.Request.Context())
	if err != nil {
		page.Flash = errorMessage(err)
		c.HTML(http.StatusOK, "admin.html", page)
		return
	}
	page.Users = users

	// admins never get a delete action, so they never get a confirm prompt
	conf := NewConfirm()
	if id := c.Query("confirm"); id != "" {
		for _, u := range users {
			if u.ID == id && u.Role != backend.RoleAdmin {
				conf.Request(id)
				break
			}
		}
	}
	page.ConfirmID = conf.Target()

	c.HTML(http.StatusOK, "admin.html", page)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	conf := NewConfirm()
	conf.Request(c.Param("id"))
	if c.PostForm("confirmed") == "1" {
		conf.Accept()
	} else {
		conf.Decline()
	}

	if conf.State() != Confirmed {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	if err := h.api.AdminDeleteUser(c.Request.Context(), conf.Target()); err != nil {
		flashError(c, err)
	} else {
		view.Flash(c, "User deleted.")
	}
	// redirect refetches the full list
	c.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) UsageEntry(c *gin.Context) {
	userID := c.PostForm("user_id")
	date := strings.TrimSpace(c.PostForm("date"))
	kwh, err := strconv.ParseFloat(c.PostForm("consumption_kwh"), 64)
	if userID == "" || date == "" || err != nil {
		view.Flash(c, "Please fill in all usage entry fields.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	err = h.api.AdminUsageEntry(c.Request.Context(), backend.UsageEntry{
		UserID:         userID,
		Date:           date,
		ConsumptionKWh: kwh,
	})
	if err != nil {
		flashError(c, err)
	} else {
		view.Flash(c, "Usage entry saved.")
	}
	c.Redirect(http.StatusFound, "/admin")
}
