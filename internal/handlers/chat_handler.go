package handlers

import (
	"net/http"
	"strings"

	"ewizz-console/internal/backend"
	"ewizz-console/internal/chat"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	api  *backend.Client
	chat *chat.Store
}

func NewChatHandler(api *backend.Client, chatStore *chat.Store) *ChatHandler {
	return &ChatHandler{api: api, chat: chatStore}
}

// Send appends the user's turn first, so it survives whatever the backend
// does next. A failed call appends the canned apology instead of flashing;
// the transcript never ends on an unanswered message.
func (h *ChatHandler) Send(c *gin.Context) {
	rec := CurrentUser(c)

	msg := strings.TrimSpace(c.PostForm("message"))
	if msg == "" {
		c.Redirect(http.StatusFound, "/dashboard?tab=chat")
		return
	}

	h.chat.Append(rec.Token, chat.RoleUser, msg)

	reply, err := h.api.Chat(c.Request.Context(), msg, h.chat.SessionID())
	if err != nil {
		h.chat.Append(rec.Token, chat.RoleAssistant, chat.Apology)
	} else {
		h.chat.Append(rec.Token, chat.RoleAssistant, reply)
	}
	c.Redirect(http.StatusFound, "/dashboard?tab=chat")
}
