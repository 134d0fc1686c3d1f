package planlock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestLocker_SerializesSamePlan(t *testing.T) {
	locker := New()
	ctx := context.Background()

	var (
		mu      sync.Mutex
		active  int
		maxSeen int
		wg      sync.WaitGroup
	)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := locker.Lock(ctx, "plan-1")
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			mu.Lock()
			active++
			if active > maxSeen {
				maxSeen = active
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
			unlock()
		}()
	}
	wg.Wait()

	if maxSeen != 1 {
		t.Errorf("max concurrent holders = %d, want 1", maxSeen)
	}
	if n := locker.size(); n != 0 {
		t.Errorf("expected idle entries to be released, got %d", n)
	}
}

func TestLocker_DifferentPlansDoNotBlock(t *testing.T) {
	locker := New()
	ctx := context.Background()

	unlockA, err := locker.Lock(ctx, "plan-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer unlockA()

	lockCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	unlockB, err := locker.Lock(lockCtx, "plan-b")
	if err != nil {
		t.Fatalf("plan-b blocked by plan-a: %v", err)
	}
	unlockB()
}

func TestLocker_ContextCancel(t *testing.T) {
	locker := New()

	unlock, err := locker.Lock(context.Background(), "plan-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := locker.Lock(ctx, "plan-1"); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}

	unlock()
	unlock()
	if n := locker.size(); n != 0 {
		t.Errorf("expected no entries after unlock, got %d", n)
	}
}
