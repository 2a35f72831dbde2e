package battle

import (
	"context"
	"sync"
)

// playerLocks serializes work per player. Entries are reference counted and
// removed once nobody holds or waits on them, so idle players cost nothing.
type playerLocks struct {
	mu    sync.Mutex
	locks map[string]*playerLock
}

type playerLock struct {
	held chan struct{}
	refs int
}

func newPlayerLocks() *playerLocks {
	return &playerLocks{locks: make(map[string]*playerLock)}
}

func (p *playerLocks) acquire(playerID string) *playerLock {
	p.mu.Lock()
	defer p.mu.Unlock()

	l, ok := p.locks[playerID]
	if !ok {
		l = &playerLock{held: make(chan struct{}, 1)}
		p.locks[playerID] = l
	}
	l.refs++
	return l
}

func (p *playerLocks) release(playerID string, l *playerLock) {
	p.mu.Lock()
	defer p.mu.Unlock()

	l.refs--
	if l.refs == 0 {
		delete(p.locks, playerID)
	}
}

func (p *playerLocks) unlocker(playerID string, l *playerLock) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			<-l.held
			p.release(playerID, l)
		})
	}
}

// Lock waits for the player's lock or for ctx to end
func (p *playerLocks) Lock(ctx context.Context, playerID string) (func(), error) {
	l := p.acquire(playerID)
	select {
	case l.held <- struct{}{}:
		return p.unlocker(playerID, l), nil
	case <-ctx.Done():
		p.release(playerID, l)
		return nil, ctx.Err()
	}
}

// TryLock takes the player's lock only if it is free
func (p *playerLocks) TryLock(playerID string) (func(), bool) {
	l := p.acquire(playerID)
	select {
	case l.held <- struct{}{}:
		return p.unlocker(playerID, l), true
	default:
		p.release(playerID, l)
		return nil, false
	}
}

// size reports how many players currently have a lock entry
func (p *playerLocks) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.locks)
}
