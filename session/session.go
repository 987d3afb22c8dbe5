// Package session owns the per-visitor state: one explicit context object
// per interactive session, created on session start and dropped on idle
// expiry. Nothing here outlives the session.
package session

import (
	"errors"
	"sync"
	"time"

	"biffguide/checklist"
	"biffguide/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned for expired or never-issued session IDs.
var ErrNotFound = errors.New("session not found")

const (
	idleTTL       = time.Hour
	sweepInterval = 5 * time.Minute
)

// Session is the per-visitor context handed into every handler.
type Session struct {
	ID        string
	CreatedAt time.Time

	Checklist *checklist.Store

	mu          sync.Mutex
	lastSeen    time.Time
	favorites   map[string]bool
	priceAlerts []models.PriceAlert
}

// ToggleFavorite flips a lodging favorite and reports the new state.
func (s *Session) ToggleFavorite(accommodationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.favorites[accommodationID] {
		delete(s.favorites, accommodationID)
		return false
	}
	s.favorites[accommodationID] = true
	return true
}

// Favorites lists the favorited accommodation IDs.
func (s *Session) Favorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.favorites))
	for id := range s.favorites {
		out = append(out, id)
	}
	return out
}

// AddPriceAlert records a price watch for this session.
func (s *Session) AddPriceAlert(alert models.PriceAlert) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.priceAlerts = append(s.priceAlerts, alert)
}

// PriceAlerts returns the recorded watches, oldest first.
func (s *Session) PriceAlerts() []models.PriceAlert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.PriceAlert(nil), s.priceAlerts...)
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Manager tracks live sessions and sweeps idle ones, the same shape as the
// rate limiter's per-visitor cleanup.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      idleTTL,
	}
}

// Start creates a fresh session with an all-unchecked checklist.
func (m *Manager) Start() *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		lastSeen:  now,
		Checklist: checklist.NewStore(),
		favorites: make(map[string]bool),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get fetches a live session and refreshes its idle timer.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	s.touch(time.Now())
	return s, nil
}

// ChecklistFor returns the checklist store of a live session. Satisfies
// checklist.StoreResolver.
func (m *Manager) ChecklistFor(id string) (*checklist.Store, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	return s.Checklist, nil
}

// Run sweeps idle sessions until stop is closed. Call in a goroutine.
func (m *Manager) Run(stop <-chan struct{}) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			m.sweep(now)
		}
	}
}

// sweep drops idle sessions. Their Redis transcripts are left to expire on
// their own TTL, where the flusher archives them.
func (m *Manager) sweep(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if s.idleSince(now) > m.ttl {
			delete(m.sessions, id)
		}
	}
}
