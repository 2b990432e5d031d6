package auth

import "sync"

// Session holds the authenticated medres identity for the running front-end.
// It replaces the ambient token globals of the original UI with a single owner:
// the login handler calls Login, the logout handler Logout, and account edits
// Update. Consumers receive the session by handle and read through it.
type Session struct {
	mu       sync.RWMutex
	token    string
	userID   int
	roleID   int
	username string
}

func NewSession() *Session {
	return &Session{}
}

// Login installs the identity returned by the backend login endpoint.
func (s *Session) Login(token string, userID, roleID int, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.userID = userID
	s.roleID = roleID
	s.username = username
}

// Logout clears the session. Account updates also invalidate the stored token,
// matching the original front-end which forces a re-login after profile edits.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.userID = 0
	s.roleID = 0
	s.username = ""
}

// Update rewrites the display identity without touching the token.
func (s *Session) Update(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = username
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) UserID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roleID == RoleAdmin
}
