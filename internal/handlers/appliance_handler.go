package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"ewizz-console/internal/backend"
	"ewizz-console/internal/view"

	"github.com/gin-gonic/gin"
)

const appliancesTab = "/dashboard?tab=appliances"

type ApplianceHandler struct {
	api *backend.Client
}

func NewApplianceHandler(api *backend.Client) *ApplianceHandler {
	return &ApplianceHandler{api: api}
}

func (h *ApplianceHandler) Add(c *gin.Context) {
	rec := CurrentUser(c)

	name := strings.TrimSpace(c.PostForm("name"))
	location := strings.TrimSpace(c.PostForm("location"))
	rating, err := strconv.ParseFloat(c.PostForm("power_rating"), 64)
	if name == "" || location == "" || err != nil {
		view.Flash(c, "Please fill in all appliance fields.")
		c.Redirect(http.StatusFound, appliancesTab)
		return
	}

	err = h.api.AddAppliance(c.Request.Context(), rec.UserID, backend.ApplianceInput{
		Name:        name,
		PowerRating: rating,
		Location:    location,
	})
	if err != nil {
		flashError(c, err)
	} else {
		view.Flash(c, name+" added.")
	}
	// the redirect refetches the authoritative list
	c.Redirect(http.StatusFound, appliancesTab)
}

// Toggle flips the status the form reported: an appliance shown ON is asked
// to turn OFF and vice versa. The list shown afterwards comes from the
// backend, never from a locally patched row.
func (h *ApplianceHandler) Toggle(c *gin.Context) {
	id := c.Param("id")
	shown := c.PostForm("status")

	next := backend.StatusOn
	if shown == backend.StatusOn {
		next = backend.StatusOff
	}

	if err := h.api.ControlAppliance(c.Request.Context(), id, next); err != nil {
		flashError(c, err)
	}
	c.Redirect(http.StatusFound, appliancesTab)
}

func (h *ApplianceHandler) Delete(c *gin.Context) {
	conf := NewConfirm()
	conf.Request(c.Param("id"))
	if c.PostForm("confirmed") == "1" {
		conf.Accept()
	} else {
		conf.Decline()
	}

	if conf.State() != Confirmed {
		// declined: no network call
		c.Redirect(http.StatusFound, appliancesTab)
		return
	}

	if err := h.api.DeleteAppliance(c.Request.Context(), conf.Target()); err != nil {
		flashError(c, err)
	} else {
		view.Flash(c, "Appliance removed.")
	}
	c.Redirect(http.StatusFound, appliancesTab)
}
