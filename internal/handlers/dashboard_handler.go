package handlers

import (
	"net/http"

	"ewizz-console/internal/backend"
	"ewizz-console/internal/chat"
	"ewizz-console/internal/session"
	"ewizz-console/internal/view"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	api  *backend.Client
	chat *chat.Store
}

func NewDashboardHandler(api *backend.Client, chatStore *chat.Store) *DashboardHandler {
	return &DashboardHandler{api: api, chat: chatStore}
}

type dashboardPage struct {
	User    *session.Record
	Flash   string
	Tab     string
	Tabs    []TabLink
	Period  string
	Periods []string

	Snapshot *backend.DashboardSnapshot
	Hourly   view.Series
	Segments []view.Segment

	Appliances []backend.Appliance
	ConfirmID  string

	Bill       *backend.BillSnapshot
	Prediction *backend.Prediction

	Tier  string
	Tiers []string
	Eco   *backend.EcoRecommendationSet

	Messages []chat.Message
}

// Show renders one tab. Each visit fetches that tab's resource from
// scratch; there is no cross-tab cache, so switching away and back
// always shows the backend's current state.
func (h *DashboardHandler) Show(c *gin.Context) {
	rec := CurrentUser(c)

	tab := c.DefaultQuery("tab", "dashboard")
	if !validTab(tab) {
		tab = "dashboard"
	}

	page := dashboardPage{
		User:    rec,
		Flash:   view.TakeFlash(c),
		Tab:     tab,
		Tabs:    DashboardTabs,
		Periods: backend.Periods,
		Tiers:   backend.EcoTiers,
	}

	ctx := c.Request.Context()
	switch tab {
	case "dashboard":
		page.Period = c.DefaultQuery("period", "today")
		if !backend.ValidPeriod(page.Period) {
			page.Period = "today"
		}
		snap, err := h.api.Dashboard(ctx, rec.UserID, page.Period)
		if err != nil {
			page.Flash = errorMessage(err)
			break
		}
		page.Snapshot = snap
		page.Hourly = view.HourlySeries(snap.HourlyData)
		page.Segments = view.Breakdown(snap.ApplianceBreakdown)

	case "appliances":
		list, err := h.api.Appliances(ctx, rec.UserID)
		if err != nil {
			page.Flash = errorMessage(err)
			break
		}
		page.Appliances = list

		conf := NewConfirm()
		if id := c.Query("confirm"); id != "" {
			for _, a := range list {
				if a.ID == id {
					conf.Request(id)
					break
				}
			}
		}
		page.ConfirmID = conf.Target()

	case "bill":
		bill, err := h.api.Bill(ctx, rec.UserID)
		if err != nil {
			page.Flash = errorMessage(err)
			break
		}
		page.Bill = bill

	case "predictor":
		pred, err := h.api.Predict(ctx, rec.UserID)
		if err != nil {
			page.Flash = errorMessage(err)
			break
		}
		page.Prediction = pred

	case "eco":
		page.Tier = c.DefaultQuery("tier", "Standard")
		if !backend.ValidTier(page.Tier) {
			page.Tier = "Standard"
		}
		set, err := h.api.EcoMode(ctx, rec.UserID, page.Tier)
		if err != nil {
			page.Flash = errorMessage(err)
			break
		}
		page.Eco = set

	case "chat":
		page.Messages = h.chat.History(rec.Token)
	}

	c.HTML(http.StatusOK, "dashboard.html", page)
}

// SelectEco switches the tier; the follow-up render does the fetch.
func (h *DashboardHandler) SelectEco(c *gin.Context) {
	tier := c.PostForm("tier")
	if !backend.ValidTier(tier) {
		tier = "Standard"
	}
	c.Redirect(http.StatusFound, "/dashboard?tab=eco&tier="+tier)
}
