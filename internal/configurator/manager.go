package configurator

import "sync"

// Manager keeps one engine per panel user, mirroring the per-user
// conversation state map of the bot FSM.
type Manager struct {
	mu      sync.Mutex
	engines map[int64]*Engine
	factory func(userID int64, token string) *Engine
}

func NewManager(factory func(userID int64, token string) *Engine) *Manager {
	return &Manager{
		engines: make(map[int64]*Engine),
		factory: factory,
	}
}

// GetOrCreate returns the user's engine, recreating it when the token
// changed (a fresh login invalidates the old session's engine).
func (m *Manager) GetOrCreate(userID int64, token string) *Engine {
	m.mu.Lock()
	defer m.mu.Unlock()

	engine, ok := m.engines[userID]
	if !ok || engine.Token() != token {
		engine = m.factory(userID, token)
		m.engines[userID] = engine
	}
	return engine
}

// Drop tears an engine down, e.g. on logout.
func (m *Manager) Drop(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.engines, userID)
}
