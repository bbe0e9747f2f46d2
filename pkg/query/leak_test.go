//go:build test

package query

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/bastiangx/wordglob/pkg/dictionary"
)

var leakPatterns = []Query{
	New("*", "", ""),
	New("h?llo", "", ""),
	New("?????", "aeiou", ""),
	New("*", "", "st"),
	New("cr*", "n", "t"),
	New("[!c]r*", "", ""),
	New("s*e", "", "a"),
	New("*[aeiou][aeiou]*", "", ""),
	New("", "", ""),
}

func loadBundled(t *testing.T) *dictionary.Dictionary {
	t.Helper()
	dict, err := dictionary.Load("")
	if err != nil {
		t.Fatalf("bundled dictionary failed to load: %v", err)
	}
	return dict
}

func retained(baseline, final runtime.MemStats) int64 {
	return int64(final.Alloc) - int64(baseline.Alloc)
}

func TestMemoryLeakBasic(t *testing.T) {
	for _, iterCount := range []int{100, 500, 1000} {
		t.Run(fmt.Sprintf("iterations_%d", iterCount), func(t *testing.T) {
			dict := loadBundled(t)

			var baseline runtime.MemStats
			runtime.GC()
			runtime.ReadMemStats(&baseline)
			baselineGoroutines := runtime.NumGoroutine()

			for i := 0; i < iterCount; i++ {
				for _, q := range leakPatterns {
					_ = Run(dict, q)
				}
			}

			var final runtime.MemStats
			runtime.GC()
			runtime.ReadMemStats(&final)

			totalOps := iterCount * len(leakPatterns)
			memDelta := retained(baseline, final)
			memPerOp := float64(memDelta) / float64(totalOps)
			goroutineDelta := runtime.NumGoroutine() - baselineGoroutines

			t.Logf("iterations=%d ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
				iterCount, totalOps, memDelta, memPerOp, goroutineDelta)

			if memPerOp > 1000 {
				t.Errorf("excessive memory retained per operation: %.2f bytes", memPerOp)
			}
			if goroutineDelta > 2 {
				t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
			}
		})
	}
}

func TestMemoryLeakConcurrent(t *testing.T) {
	configs := []struct {
		workers             int
		iterationsPerWorker int
	}{
		{workers: 1, iterationsPerWorker: 400},
		{workers: 4, iterationsPerWorker: 100},
		{workers: 8, iterationsPerWorker: 50},
	}

	for _, config := range configs {
		t.Run(fmt.Sprintf("workers_%d_iter_%d", config.workers, config.iterationsPerWorker), func(t *testing.T) {
			dict := loadBundled(t)

			var baseline runtime.MemStats
			runtime.GC()
			runtime.ReadMemStats(&baseline)
			baselineGoroutines := runtime.NumGoroutine()

			var wg sync.WaitGroup
			var totalOps atomic.Int64
			for worker := 0; worker < config.workers; worker++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for iter := 0; iter < config.iterationsPerWorker; iter++ {
						for _, q := range leakPatterns {
							_ = Run(dict, q)
							totalOps.Add(1)
						}
					}
				}()
			}
			wg.Wait()

			var final runtime.MemStats
			runtime.GC()
			runtime.ReadMemStats(&final)

			memDelta := retained(baseline, final)
			memPerOp := float64(memDelta) / float64(totalOps.Load())
			goroutineDelta := runtime.NumGoroutine() - baselineGoroutines

			t.Logf("workers=%d iter_per_worker=%d total_ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
				config.workers, config.iterationsPerWorker, totalOps.Load(), memDelta, memPerOp, goroutineDelta)

			if memPerOp > 1000 {
				t.Errorf("excessive memory retained per operation: %.2f bytes", memPerOp)
			}
			if goroutineDelta > 3 {
				t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
			}
		})
	}
}
