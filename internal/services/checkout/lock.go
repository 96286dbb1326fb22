package checkout

import "sync"

// sessionLocks serializes work per session id. The SDK delivers its callbacks
// strictly sequentially, but nothing stops a client from issuing two HTTP
// requests at once; the lock keeps one logical request in flight per session
// so read-modify-write cycles against the store never interleave.
type sessionLocks struct {
	mu sync.Mutex
	m  map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{m: make(map[string]*sessionLock)}
}

// acquire blocks until the session's lock is held and returns the release
// function. Entries are refcounted and removed on last release so the map
// stays bounded by the number of in-flight requests.
func (l *sessionLocks) acquire(id string) func() {
	l.mu.Lock()
	sl, ok := l.m[id]
	if !ok {
		sl = &sessionLock{}
		l.m[id] = sl
	}
	sl.refs++
	l.mu.Unlock()

	sl.mu.Lock()
	return func() {
		sl.mu.Unlock()
		l.mu.Lock()
		sl.refs--
		if sl.refs == 0 {
			delete(l.m, id)
		}
		l.mu.Unlock()
	}
}
