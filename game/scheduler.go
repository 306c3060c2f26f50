package game

import (
	"sync"
	"sync/atomic"
	"time"
)

// FrameSource delivers display refreshes to a scheduler
type FrameSource interface {
	// Request arranges for fn to run once, at the next refresh
	Request(fn func())

	// Cancel drops any pending request and releases the source
	Cancel()
}

// Scheduler runs a tick function once per refresh until stopped.
// It can be started once; there is no pause/resume.
type Scheduler struct {
	source  FrameSource
	tick    func()
	started atomic.Bool
	running atomic.Bool
	ticks   atomic.Uint64
}

// NewScheduler creates a scheduler that drives tick from source
func NewScheduler(source FrameSource, tick func()) *Scheduler {
	return &Scheduler{
		source: source,
		tick:   tick,
	}
}

// Start requests the first frame
func (s *Scheduler) Start() error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrSchedulerStarted
	}
	s.running.Store(true)
	s.source.Request(s.frame)
	return nil
}

// Stop prevents any further tick; a tick already running completes
func (s *Scheduler) Stop() {
	if s.running.Swap(false) {
		s.source.Cancel()
	}
}

// Running reports whether the scheduler is between Start and Stop
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

// Ticks returns how many ticks have run
func (s *Scheduler) Ticks() uint64 {
	return s.ticks.Load()
}

// frame runs one tick and re-requests itself unless stopped
func (s *Scheduler) frame() {
	if !s.running.Load() {
		return
	}
	s.tick()
	s.ticks.Add(1)

	if s.running.Load() {
		s.source.Request(s.frame)
	}
}

// RefreshSource is a frame source fired by an external refresh callback,
// such as ebiten's Update
type RefreshSource struct {
	pending func()
}

// NewRefreshSource creates an idle refresh source
func NewRefreshSource() *RefreshSource {
	return &RefreshSource{}
}

// Request stores fn for the next Fire
func (r *RefreshSource) Request(fn func()) {
	r.pending = fn
}

// Cancel drops the pending request
func (r *RefreshSource) Cancel() {
	r.pending = nil
}

// Fire runs the pending request, if any. It reports whether one ran.
func (r *RefreshSource) Fire() bool {
	fn := r.pending
	r.pending = nil
	if fn == nil {
		return false
	}
	fn()
	return true
}

// TickerSource is a frame source driven by a time.Ticker on its own goroutine.
// Requests only ever run on that goroutine.
type TickerSource struct {
	interval time.Duration

	mu      sync.Mutex
	pending func()
	started bool

	stop chan struct{}
	once sync.Once
}

// NewTickerSource creates a source firing every interval
func NewTickerSource(interval time.Duration) *TickerSource {
	return &TickerSource{
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Request stores fn for the next tick, starting the ticker goroutine on first use
func (t *TickerSource) Request(fn func()) {
	t.mu.Lock()
	t.pending = fn
	first := !t.started
	t.started = true
	t.mu.Unlock()

	if first {
		go t.run()
	}
}

// Cancel stops the ticker goroutine
func (t *TickerSource) Cancel() {
	t.once.Do(func() {
		t.mu.Lock()
		t.pending = nil
		t.mu.Unlock()
		close(t.stop)
	})
}

// Done is closed once the source has been cancelled
func (t *TickerSource) Done() <-chan struct{} {
	return t.stop
}

func (t *TickerSource) run() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			t.mu.Lock()
			fn := t.pending
			t.pending = nil
			t.mu.Unlock()

			if fn != nil {
				fn()
			}
		}
	}
}
