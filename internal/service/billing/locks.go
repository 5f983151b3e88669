package billing

import "sync"

// groupLocks serializes recomputations per (operation, group). Concurrent
// requests for different groups proceed independently; two requests for the
// same group queue behind each other to keep the apportionment invariant.
type groupLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newGroupLocks() *groupLocks {
	return &groupLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the per-group mutex and returns its unlock function.
func (l *groupLocks) Lock(operationID, groupID string) func() {
	key := operationID + "/" + groupID

	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
