package dashboard

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"corrdash/internal/domain"
)

// Panel names accepted by Toggle.
const (
	PanelForecast   = "forecast"
	PanelCentrality = "centrality"
)

// SessionStore keeps per-session panel visibility state in memory. State is
// scoped to the process lifetime; nothing is persisted across restarts.
// The mutex covers concurrent HTTP access - each individual session is
// still driven by one user interaction at a time.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.PanelState
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]domain.PanelState)}
}

// NewSession creates a session with both panels hidden and returns its ID.
func (s *SessionStore) NewSession() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = domain.PanelState{}
	s.mu.Unlock()
	return id
}

// Get returns the state for a session. Unknown IDs get the default state,
// matching a fresh session with both panels hidden.
func (s *SessionStore) Get(id string) domain.PanelState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id]
}

// Toggle flips the named panel's visibility and returns the new state.
// Toggling twice restores the original state.
func (s *SessionStore) Toggle(id, panel string) (domain.PanelState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.sessions[id]
	switch panel {
	case PanelForecast:
		state.ShowForecast = !state.ShowForecast
	case PanelCentrality:
		state.ShowCentrality = !state.ShowCentrality
	default:
		return state, fmt.Errorf("unknown panel: %s", panel)
	}
	s.sessions[id] = state
	return state, nil
}
