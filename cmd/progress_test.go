package cmd

import (
	"sync"
	"testing"
)

func TestProgressPrinterCounts(t *testing.T) {
	p := newProgressPrinter(4, "audit")

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Increment(true, true, 0.5)
		}()
	}
	wg.Wait()
	p.Increment(false, false, 0.1)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ok != 3 || p.fail != 1 || p.ai != 3 {
		t.Errorf("counts ok=%d fail=%d ai=%d, want 3/1/3", p.ok, p.fail, p.ai)
	}
}

func TestProgressPrinterStopIsIdempotent(t *testing.T) {
	p := newProgressPrinter(1, "audit")
	p.Start()
	p.Increment(true, false, 0.2)
	p.Stop()
	p.Stop() // must not panic on double close
}

func TestProgressPrinterZeroTotal(t *testing.T) {
	p := newProgressPrinter(0, "audit")
	if p.total != 1 {
		t.Errorf("total = %d, want clamped to 1", p.total)
	}
}
