package tokenstore

import "sync"

// in-memory revocation store for admin session ids. Single-process
// deployment; a restart forgets revocations together with the sessions
// themselves.
var (
	mu      sync.RWMutex
	revoked = map[string]struct{}{}
)

// Revoke marks a session id as logged out.
func Revoke(sid string) {
	if sid == "" {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	revoked[sid] = struct{}{}
}

// IsRevoked reports whether a session id was logged out.
func IsRevoked(sid string) bool {
	if sid == "" {
		return false
	}
	mu.RLock()
	defer mu.RUnlock()
	_, ok := revoked[sid]
	return ok
}
