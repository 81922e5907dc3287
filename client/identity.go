package client

import "sync"

// IdentityContext supplies the current authenticated user id (empty string
// when signed out) and notifies listeners on every transition. The auth
// flow owns it; the sync engine only listens.
type IdentityContext struct {
	mu        sync.Mutex
	userID    string
	listeners []func(userID string)
}

func NewIdentityContext() *IdentityContext {
	return &IdentityContext{}
}

// UserID returns the current identity, or "" when none is present.
func (ic *IdentityContext) UserID() string {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	return ic.userID
}

// SetUserID records a login ("u123"), logout ("") or identity switch and
// notifies listeners. Setting the same id again is a no-op.
func (ic *IdentityContext) SetUserID(userID string) {
	ic.mu.Lock()
	if ic.userID == userID {
		ic.mu.Unlock()
		return
	}
	ic.userID = userID
	listeners := make([]func(string), len(ic.listeners))
	copy(listeners, ic.listeners)
	ic.mu.Unlock()

	for _, fn := range listeners {
		fn(userID)
	}
}

// OnChange registers a listener called after every identity transition.
func (ic *IdentityContext) OnChange(fn func(userID string)) {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	ic.listeners = append(ic.listeners, fn)
}
