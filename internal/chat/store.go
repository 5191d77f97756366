package chat

import (
	"fmt"
	"sync"
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Apology is appended in place of an assistant reply when the backend call
// fails, so the transcript never ends on an unanswered turn.
const Apology = "Sorry, I am having trouble responding right now. Please try again in a moment."

type Message struct {
	Role    string
	Content string
}

// Store keeps one append-only transcript per session token, in memory only.
// A restart drops every transcript, the same way a page reload did.
type Store struct {
	mu        sync.Mutex
	history   map[string][]Message
	sessionID string
}

func NewStore() *Store {
	return &Store{
		history: make(map[string][]Message),
		// one backend chat session per process, derived from start time
		sessionID: fmt.Sprintf("session_%d", time.Now().UnixMilli()),
	}
}

// SessionID is the backend chatbot session identifier, fixed for the
// lifetime of the process and never persisted.
func (s *Store) SessionID() string {
	return s.sessionID
}

func (s *Store) Append(token, role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history[token] = append(s.history[token], Message{Role: role, Content: content})
}

func (s *Store) History(token string) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.history[token]
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}
