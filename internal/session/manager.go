// ABOUTME: In-memory session state shared by every command and TUI screen
// ABOUTME: Rehydrates once from the store and handles login/logout transitions

package session

// Session pairs a user profile with the bearer token issued alongside it.
// The backend returns both in one envelope; a profile-only install (no
// token) leaves the previously stored token untouched.
type Session struct {
	User  *User
	Token string
}

// Manager is the single source of truth for the authenticated user.
// Construct one per process and inject it; it is not safe for concurrent
// use, matching the single event loop it serves.
type Manager struct {
	store   *Store
	current *User
}

// NewManager creates a manager backed by the given store and rehydrates
// the session from disk. An absent or corrupt stored session simply
// leaves the manager unauthenticated.
func NewManager(store *Store) *Manager {
	m := &Manager{store: store}
	m.rehydrate()
	return m
}

func (m *Manager) rehydrate() {
	user, err := m.store.Load()
	if err != nil {
		return
	}
	m.current = user
}

// Current returns the active user, or nil when unauthenticated. Callers
// must not mutate the returned record; changes go through Login.
func (m *Manager) Current() *User {
	return m.current
}

// Token returns the stored bearer token, or "" when none exists.
func (m *Manager) Token() string {
	return m.store.Token()
}

// Login installs a whole session: persists it, then publishes it. A
// session without a user is a no-op so callers can pass through empty
// results without guarding.
func (m *Manager) Login(sess Session) error {
	if sess.User == nil {
		return nil
	}
	if err := m.store.Save(sess.User, sess.Token); err != nil {
		return err
	}
	m.current = sess.User
	return nil
}

// Logout clears the session. It always succeeds from the caller's
// perspective; the in-memory state is dropped even if removing the
// stored keys fails.
func (m *Manager) Logout() error {
	m.current = nil
	return m.store.Clear()
}
