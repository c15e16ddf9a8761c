package auth

import "sync"

// SessionRegistry maps each subject to the single token currently considered
// live for it. A token that decodes cleanly but is not the registry's current
// entry for its subject has been superseded or revoked and must be rejected.
//
// The registry is process-local and deliberately never expires entries on its
// own: a stale entry past its token's expiry is inert, because resolution
// re-checks the token's own expiry before consulting the registry.
type SessionRegistry struct {
	mu     sync.RWMutex
	active map[string]string
}

// NewSessionRegistry returns an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{active: make(map[string]string)}
}

// Replace installs token as the sole live session for subject, atomically
// displacing any prior token. Last writer wins under concurrency.
func (r *SessionRegistry) Replace(subject, token string) {
	r.mu.Lock()
	r.active[subject] = token
	r.mu.Unlock()
}

// IsCurrent reports whether token is the live session for subject.
func (r *SessionRegistry) IsCurrent(subject, token string) bool {
	r.mu.RLock()
	current, ok := r.active[subject]
	r.mu.RUnlock()
	return ok && current == token
}

// RemoveIfCurrent deletes the subject's entry only if it still equals token,
// so a logout racing a fresh login never tears down the newer session.
func (r *SessionRegistry) RemoveIfCurrent(subject, token string) {
	r.mu.Lock()
	if current, ok := r.active[subject]; ok && current == token {
		delete(r.active, subject)
	}
	r.mu.Unlock()
}

// Len reports the number of subjects with a registered session.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.active)
}
