package aatree

import (
	"math/rand/v2"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"
	"testing"
	"time"
)

// Readers may share a Map as long as no mutation is in flight.
func TestConcurrentReadersWithoutWriters(t *testing.T) {
	t.Cleanup(func() {
		if t.Failed() {
			pprof.Lookup("goroutine").WriteTo(os.Stderr, 2)
		}
	})

	seed := uint64(time.Now().UnixNano())
	t.Logf("test seed=%d", seed)

	const keySpace = 4096
	m := New[int, int]()
	for i := 0; i < keySpace; i += 2 {
		m.Put(i, i*3)
	}
	wantLen := m.Len()
	wantHeight := m.Height()

	goroutines := max(2*runtime.GOMAXPROCS(0), 4)
	const operationsPerGoroutine = 2000

	var wg sync.WaitGroup
	errs := make(chan string, goroutines)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(s uint64) {
			defer wg.Done()
			r := rand.New(rand.NewPCG(s, s))
			for i := 0; i < operationsPerGoroutine; i++ {
				key := r.IntN(keySpace)
				switch r.IntN(4) {
				case 0:
					v, ok := m.Get(key)
					if ok != (key%2 == 0) || (ok && v != key*3) {
						errs <- "get returned a wrong answer"
						return
					}
				case 1:
					if m.Contains(key) != (key%2 == 0) {
						errs <- "contains returned a wrong answer"
						return
					}
				case 2:
					if m.Height() != wantHeight {
						errs <- "height changed without writers"
						return
					}
				case 3:
					if i%100 == 0 && len(m.InOrder()) != wantLen {
						errs <- "in-order traversal lost keys"
						return
					}
				}
			}
		}(seed + uint64(g))
	}

	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Fatal(msg)
	}

	// Validate iterator consistency once readers are done.
	it := m.Iterator()
	prev := -1
	for it.Next() {
		if it.Key() <= prev {
			t.Fatalf("iterator out of order: previous=%d current=%d", prev, it.Key())
		}
		prev = it.Key()
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
}
