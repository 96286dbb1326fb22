package checkout

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionLocksMutualExclusion(t *testing.T) {
	locks := newSessionLocks()

	var inside, maxInside int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := locks.acquire("sess-1")
			defer release()

			mu.Lock()
			inside++
			if inside > maxInside {
				maxInside = inside
			}
			mu.Unlock()

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInside)
}

func TestSessionLocksIndependentSessions(t *testing.T) {
	locks := newSessionLocks()

	releaseA := locks.acquire("sess-a")

	// A held lock on one session must not block another session.
	done := make(chan struct{})
	go func() {
		releaseB := locks.acquire("sess-b")
		releaseB()
		close(done)
	}()
	<-done

	releaseA()
}

func TestSessionLocksReleaseCleansUp(t *testing.T) {
	locks := newSessionLocks()

	release := locks.acquire("sess-1")
	release()

	locks.mu.Lock()
	defer locks.mu.Unlock()
	assert.Empty(t, locks.m)
}
