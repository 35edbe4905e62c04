package ticker

import (
	"sync"
	"time"
)

// Func is invoked on every tick with the generation of the run that
// produced it.
type Func func(gen uint64)

// Ticker calls a Func at a fixed interval between Start and Stop. Every
// Start opens a new generation so receivers can discard ticks that were
// already in flight when the previous run was stopped.
type Ticker struct {
	mu       sync.RWMutex
	interval time.Duration
	fn       Func
	running  bool
	gen      uint64
	stopChan chan struct{}
}

func New(interval time.Duration, fn Func) *Ticker {
	return &Ticker{
		interval: interval,
		fn:       fn,
	}
}

// SetFunc replaces the callback. It must be called before Start.
func (t *Ticker) SetFunc(fn Func) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fn = fn
}

func (t *Ticker) Start() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return t.gen
	}

	t.running = true
	t.gen++
	t.stopChan = make(chan struct{})

	go t.run(t.gen, t.fn, t.stopChan)
	return t.gen
}

func (t *Ticker) run(gen uint64, fn Func, stop <-chan struct{}) {
	tk := time.NewTicker(t.interval)
	defer tk.Stop()

	for {
		select {
		case <-stop:
			return
		case <-tk.C:
			// Stop may race with a ready tick; the stop channel wins.
			select {
			case <-stop:
				return
			default:
			}
			if fn != nil {
				fn(gen)
			}
		}
	}
}

func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}

	t.running = false
	close(t.stopChan)
	t.stopChan = nil
}

func (t *Ticker) Running() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.running
}

// generation returns the id of the current (or most recent) run.
func (t *Ticker) generation() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.gen
}
