package planlock

import (
	"context"
	"sync"
)

// Locker serializes mutations per plan within this process.
// Entries are dropped once no caller holds or waits on them.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	ch   chan struct{}
	refs int
}

func New() *Locker {
	return &Locker{locks: make(map[string]*entry)}
}

// Lock blocks until the plan is free or ctx is done. The returned func releases it.
func (l *Locker) Lock(ctx context.Context, planID string) (func(), error) {
	l.mu.Lock()
	e, ok := l.locks[planID]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		l.locks[planID] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(planID, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.ch
			l.release(planID, e)
		})
	}, nil
}

func (l *Locker) release(planID string, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.locks, planID)
	}
}

func (l *Locker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
