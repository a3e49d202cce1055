package assistant

import (
	"context"
	"sync"
	"time"
)

// maxHistoryTurns bounds how many turns a conversation retains; older turns
// are discarded oldest-first.
const maxHistoryTurns = 15

// Turn is one message in a conversation, from either side.
type Turn struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// Store persists conversation history and user preferences keyed by
// conversation id.
type Store interface {
	History(ctx context.Context, conversationID string) ([]Turn, error)
	Append(ctx context.Context, conversationID string, turns ...Turn) error
	Preferences(ctx context.Context, conversationID string) (map[string]string, error)
	UpdatePreferences(ctx context.Context, conversationID string, prefs map[string]string) error
}

// MemoryStore keeps conversations in process memory. It is the default
// backend and the one tests use.
type MemoryStore struct {
	mu      sync.RWMutex
	history map[string][]Turn
	prefs   map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		history: make(map[string][]Turn),
		prefs:   make(map[string]map[string]string),
	}
}

func (m *MemoryStore) History(_ context.Context, conversationID string) ([]Turn, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	turns := m.history[conversationID]
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out, nil
}

func (m *MemoryStore) Append(_ context.Context, conversationID string, turns ...Turn) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	updated := append(m.history[conversationID], turns...)
	if len(updated) > maxHistoryTurns {
		updated = updated[len(updated)-maxHistoryTurns:]
	}
	m.history[conversationID] = updated
	return nil
}

func (m *MemoryStore) Preferences(_ context.Context, conversationID string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]string, len(m.prefs[conversationID]))
	for k, v := range m.prefs[conversationID] {
		out[k] = v
	}
	return out, nil
}

func (m *MemoryStore) UpdatePreferences(_ context.Context, conversationID string, prefs map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.prefs[conversationID]
	if current == nil {
		current = make(map[string]string, len(prefs))
		m.prefs[conversationID] = current
	}
	for k, v := range prefs {
		current[k] = v
	}
	return nil
}
