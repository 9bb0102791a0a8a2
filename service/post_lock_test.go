package service

import (
	"sync"
	"testing"
)

func TestPostLocks_Release(t *testing.T) {
	l := newPostLocks()
	unlock := l.lock(1)
	if l.size() != 1 {
		t.Fatalf("expected 1 lock entry")
	}
	unlock()
	if l.size() != 0 {
		t.Fatalf("expected lock entry to be released")
	}
}

func TestPostLocks_SerializeSamePost(t *testing.T) {
	l := newPostLocks()
	var (
		wg      sync.WaitGroup
		inside  int
		maxSeen int
		mu      sync.Mutex
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.lock(7)
			defer unlock()
			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()
	if maxSeen != 1 {
		t.Fatalf("expected at most one holder, saw %d", maxSeen)
	}
	if l.size() != 0 {
		t.Fatalf("expected all entries released, got %d", l.size())
	}
}
