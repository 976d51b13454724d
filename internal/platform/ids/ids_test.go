package ids

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestNew_DistinctUnderRapidCreation(t *testing.T) {
	const n = 5000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := New()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s after %d creations", id, i)
		}
		seen[id] = struct{}{}
	}
}

func TestNew_ConcurrentAndVersion7(t *testing.T) {
	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		seen = map[string]struct{}{}
	)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				id := New()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if len(seen) != 1600 {
		t.Fatalf("expected 1600 distinct ids, got %d", len(seen))
	}

	parsed, err := uuid.Parse(New())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Version() != 7 {
		t.Fatalf("expected version 7, got %d", parsed.Version())
	}
}
