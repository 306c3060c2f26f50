package game

import (
	"errors"
	"testing"
	"time"
)

func TestSchedulerTicksOncePerRefresh(t *testing.T) {
	source := &manualSource{}
	ticks := 0
	scheduler := NewScheduler(source, func() { ticks++ })

	if err := scheduler.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if ticks != 0 {
		t.Fatalf("Expected no tick before the first refresh, got %d", ticks)
	}

	for i := 0; i < 5; i++ {
		if !source.step() {
			t.Fatalf("Expected a pending frame at refresh %d", i)
		}
	}
	if ticks != 5 || scheduler.Ticks() != 5 {
		t.Errorf("Expected 5 ticks, got %d (scheduler reports %d)", ticks, scheduler.Ticks())
	}
}

func TestSchedulerStopPreventsFurtherTicks(t *testing.T) {
	source := &manualSource{}
	ticks := 0
	scheduler := NewScheduler(source, func() { ticks++ })
	scheduler.Start()
	source.step()

	scheduler.Stop()

	if scheduler.Running() {
		t.Error("Expected scheduler to report stopped")
	}
	if source.cancelled != 1 {
		t.Errorf("Expected source cancelled once, got %d", source.cancelled)
	}
	if source.step() {
		t.Error("Expected no pending frame after Stop")
	}
	if ticks != 1 {
		t.Errorf("Expected 1 tick, got %d", ticks)
	}

	scheduler.Stop()
	if source.cancelled != 1 {
		t.Errorf("Expected second Stop to be a no-op, got %d cancels", source.cancelled)
	}
}

func TestSchedulerStopFromInsideTick(t *testing.T) {
	source := &manualSource{}
	var scheduler *Scheduler
	scheduler = NewScheduler(source, func() {
		if scheduler.Ticks() == 2 {
			scheduler.Stop()
		}
	})
	scheduler.Start()

	for source.step() {
	}

	if scheduler.Ticks() != 3 {
		t.Errorf("Expected the stopping tick to complete (3 ticks), got %d", scheduler.Ticks())
	}
	if source.requests != 3 {
		t.Errorf("Expected no request after the stopping tick, got %d requests", source.requests)
	}
}

func TestSchedulerCannotRestart(t *testing.T) {
	scheduler := NewScheduler(&manualSource{}, func() {})
	scheduler.Start()

	if err := scheduler.Start(); !errors.Is(err, ErrSchedulerStarted) {
		t.Errorf("Expected ErrSchedulerStarted, got %v", err)
	}

	scheduler.Stop()
	if err := scheduler.Start(); !errors.Is(err, ErrSchedulerStarted) {
		t.Errorf("Expected ErrSchedulerStarted after Stop, got %v", err)
	}
}

func TestSchedulerDrivesEngineAcrossResize(t *testing.T) {
	source := &manualSource{}
	engine := newTestEngine(t, DefaultConfig(), &recordingSurface{})
	scheduler := NewScheduler(source, engine.Tick)
	scheduler.Start()

	source.step()
	engine.Resize(400, 300)
	source.step()

	if !scheduler.Running() || engine.Ticks() != 2 {
		t.Errorf("Expected resize to leave the scheduler running, got running=%v ticks=%d", scheduler.Running(), engine.Ticks())
	}
	if engine.Field().Width != 400 {
		t.Errorf("Expected next tick to see the resized field, got width %v", engine.Field().Width)
	}
}

func TestRefreshSourceFire(t *testing.T) {
	source := NewRefreshSource()
	if source.Fire() {
		t.Error("Expected Fire without a request to report false")
	}

	fired := 0
	source.Request(func() { fired++ })
	if !source.Fire() || fired != 1 {
		t.Errorf("Expected request to fire once, fired %d", fired)
	}
	if source.Fire() {
		t.Error("Expected request to be consumed by Fire")
	}

	source.Request(func() { fired++ })
	source.Cancel()
	if source.Fire() || fired != 1 {
		t.Error("Expected cancelled request not to fire")
	}
}

func TestTickerSourceRunsUntilStopped(t *testing.T) {
	source := NewTickerSource(time.Millisecond)
	var scheduler *Scheduler
	scheduler = NewScheduler(source, func() {
		if scheduler.Ticks() == 4 {
			scheduler.Stop()
		}
	})

	if err := scheduler.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	select {
	case <-source.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for the ticker source to stop")
	}

	// the stopping tick finishes its bookkeeping after Cancel
	deadline := time.Now().Add(time.Second)
	for scheduler.Ticks() != 5 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if scheduler.Ticks() != 5 {
		t.Errorf("Expected 5 ticks, got %d", scheduler.Ticks())
	}
}
