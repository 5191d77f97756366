package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendOnly(t *testing.T) {
	s := NewStore()

	s.Append("tok", RoleUser, "hello")
	s.Append("tok", RoleAssistant, "hi there")
	s.Append("tok", RoleUser, "what's my usage?")

	msgs := s.History("tok")
	assert.Len(t, msgs, 3)
	assert.Equal(t, Message{Role: RoleUser, Content: "hello"}, msgs[0])
	assert.Equal(t, Message{Role: RoleAssistant, Content: "hi there"}, msgs[1])
	assert.Equal(t, Message{Role: RoleUser, Content: "what's my usage?"}, msgs[2])
}

func TestHistoryIsACopy(t *testing.T) {
	s := NewStore()
	s.Append("tok", RoleUser, "first")

	msgs := s.History("tok")
	msgs[0].Content = "mutated"

	assert.Equal(t, "first", s.History("tok")[0].Content)
}

func TestTranscriptsAreIsolatedByToken(t *testing.T) {
	s := NewStore()
	s.Append("a", RoleUser, "mine")
	s.Append("b", RoleUser, "yours")

	assert.Len(t, s.History("a"), 1)
	assert.Equal(t, "yours", s.History("b")[0].Content)
	assert.Empty(t, s.History("c"))
}

func TestSessionIDFixedPerProcess(t *testing.T) {
	s := NewStore()
	assert.True(t, strings.HasPrefix(s.SessionID(), "session_"))
	assert.Equal(t, s.SessionID(), s.SessionID())
}
