package handlers

import (
	"errors"
	"net/http"

	"ewizz-console/internal/backend"
	"ewizz-console/internal/session"
	"ewizz-console/internal/view"

	"github.com/gin-gonic/gin"
)

const genericErrorMsg = "Something went wrong. Please try again."

type TabLink struct {
	Key   string
	Label string
}

// DashboardTabs is the fixed tab bar of the user dashboard.
var DashboardTabs = []TabLink{
	{Key: "dashboard", Label: "Dashboard"},
	{Key: "appliances", Label: "Appliances"},
	{Key: "bill", Label: "Bill"},
	{Key: "predictor", Label: "Predictor"},
	{Key: "eco", Label: "Eco Mode"},
	{Key: "chat", Label: "Assistant"},
}

func validTab(tab string) bool {
	for _, t := range DashboardTabs {
		if t.Key == tab {
			return true
		}
	}
	return false
}

// CurrentUser returns the session the middleware resolved, or nil.
func CurrentUser(c *gin.Context) *session.Record {
	v, ok := c.Get(session.ContextKey)
	if !ok {
		return nil
	}
	rec, _ := v.(*session.Record)
	return rec
}

// errorMessage prefers the backend's human-readable detail when it sent one;
// transport failures and detail-less errors collapse to one generic message.
func errorMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return genericErrorMsg
}

func flashError(c *gin.Context, err error) {
	view.Flash(c, errorMessage(err))
}

// HomeRedirect sends a session to its shell by role, and everyone else to
// the login page.
func HomeRedirect(c *gin.Context) {
	rec := CurrentUser(c)
	switch {
	case rec == nil:
		c.Redirect(http.StatusFound, "/login")
	case rec.Role == backend.RoleAdmin:
		c.Redirect(http.StatusFound, "/admin")
	default:
		c.Redirect(http.StatusFound, "/dashboard")
	}
}
