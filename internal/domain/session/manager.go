package session

import (
	"log/slog"
	"sync"
	"time"
)

// Manager keeps one controller per client session key.
type Manager struct {
	projects ProjectStore
	now      func() time.Time
	logger   *slog.Logger

	mu          sync.Mutex
	controllers map[string]*Controller
}

// NewManager creates a new session manager.
func NewManager(projects ProjectStore, now func() time.Time, logger *slog.Logger) *Manager {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{
		projects:    projects,
		now:         now,
		logger:      logger,
		controllers: make(map[string]*Controller),
	}
}

// Open returns the controller for key, creating it on first use.
func (m *Manager) Open(key string) *Controller {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.controllers[key]; ok {
		return c
	}
	c := NewController(m.projects, WithClock(m.now), WithLogger(m.logger))
	m.controllers[key] = c
	m.logger.Debug("session opened", "key", key, "session_id", c.ID())
	return c
}

// Close forgets the controller for key.
func (m *Manager) Close(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.controllers[key]; ok {
		m.logger.Debug("session closed", "key", key, "session_id", c.ID())
		delete(m.controllers, key)
	}
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.controllers)
}
