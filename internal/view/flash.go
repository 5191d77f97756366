package view

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

const flashCookie = "ewizz_flash"

// Flash queues a one-shot notification for the next rendered page.
func Flash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, url.QueryEscape(msg), 60, "/", "", false, true)
}

// TakeFlash returns the pending notification, if any, and clears it.
func TakeFlash(c *gin.Context) string {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	msg, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return msg
}
