package usecase

import "sync"

// ownerLocks serializes vault bookkeeping per customer. Concurrent add-card
// and remove-default-card on the same owner could otherwise both observe
// "count == 0" and leave zero or multiple defaults. Locks are never
// released from the map; the set of active owners is small and process
// lifetime is bounded by deploys.

type ownerLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newOwnerLocks() *ownerLocks {
	return &ownerLocks{locks: make(map[string]*sync.Mutex)}
}

func (o *ownerLocks) lock(owner string) *sync.Mutex {
	o.mu.Lock()
	l, ok := o.locks[owner]
	if !ok {
		l = &sync.Mutex{}
		o.locks[owner] = l
	}
	o.mu.Unlock()

	l.Lock()
	return l
}
