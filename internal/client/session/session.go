// Package session manages the locally persisted authentication state of the
// Pathshala client: the bearer token issued by the backend and a cached
// snapshot of the signed-in user. The state survives restarts; it is stored
// in plaintext, matching what the mobile app keeps in its preferences.
package session

// User is the cached profile of the signed-in account, as returned by the
// backend on login/register. CreatedAt is a server-issued timestamp string
// and is displayed, not parsed.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// Session is the durable record of whether a user is authenticated and which
// token/user that corresponds to. LoggedIn is kept for compatibility with the
// historical on-disk format; authenticated status is always derived from
// Token being non-empty, never from this flag.
//
// The persisted JSON is flat: token, is_logged_in, and the user fields as
// top-level entries under the mobile app's preference key names (user_id,
// first_name, ...). See the MarshalJSON/UnmarshalJSON pair in store.go.
type Session struct {
	Token    string
	LoggedIn bool
	User     User
}

// Manager is the semantic wrapper over a Store. It performs no network calls;
// it is pure state management. Construct one per process and inject it into
// every component that needs the session (no package-level singleton).
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// IsAuthenticated reports whether a non-empty token is persisted. A store
// read failure is treated as "no session"; the downstream server rejecting
// an unauthenticated request is the correct failure surface.
func (m *Manager) IsAuthenticated() bool {
	return m.Token() != ""
}

// Token returns the persisted bearer token, or "" if none is stored or the
// store is unreadable.
func (m *Manager) Token() string {
	s, err := m.store.Load()
	if err != nil {
		return ""
	}
	return s.Token
}

// CurrentUser returns the persisted user snapshot, or the zero User if no
// session is stored.
func (m *Manager) CurrentUser() User {
	s, err := m.store.Load()
	if err != nil {
		return User{}
	}
	return s.User
}

// SaveSession persists token and user as one unit. Either the whole session
// becomes visible to subsequent reads or the previous state stays intact;
// callers should fail the surrounding login if this returns an error.
func (m *Manager) SaveSession(token string, user User) error {
	return m.store.Save(Session{Token: token, LoggedIn: true, User: user})
}

// Logout clears the persisted session. Subsequent reads observe the empty
// default.
func (m *Manager) Logout() error {
	return m.store.Clear()
}
