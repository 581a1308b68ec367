package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	contractx "github.com/edumentor/edumentor/agent/contract"
)

var ErrInvalidSession = errors.New("session id is empty")

// Turn is one (question, response) pair of a conversation.
type Turn struct {
	Question string `json:"question"`
	Response string `json:"response"`
}

// BufferStore keeps one append-only turn log per session in process memory.
// Appends are serialized with a mutex so concurrent sessions against the
// same assistant cannot corrupt each other's logs.
type BufferStore struct {
	mu       sync.RWMutex
	sessions map[string][]Turn
}

var _ contractx.MemoryStore = (*BufferStore)(nil)

func NewBufferStore() *BufferStore {
	return &BufferStore{sessions: make(map[string][]Turn)}
}

func (s *BufferStore) Load(ctx context.Context, sessionID string) (string, error) {
	if strings.TrimSpace(sessionID) == "" {
		return "", ErrInvalidSession
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FormatHistory(s.sessions[sessionID]), nil
}

func (s *BufferStore) Append(ctx context.Context, sessionID, question, response string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrInvalidSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], Turn{Question: question, Response: response})
	return nil
}

// Turns returns a copy of the session's log, mostly for tests and debugging.
func (s *BufferStore) Turns(sessionID string) []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Turn(nil), s.sessions[sessionID]...)
}

// FormatHistory renders turns the way prompts embed them.
func FormatHistory(turns []Turn) string {
	var sb strings.Builder
	for i, t := range turns {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("Human: ")
		sb.WriteString(t.Question)
		sb.WriteByte('\n')
		sb.WriteString("AI: ")
		sb.WriteString(t.Response)
	}
	return sb.String()
}
