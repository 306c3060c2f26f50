package game

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// FPSMeter averages frame rate over a fixed window
type FPSMeter struct {
	window  float64 // seconds per measurement
	elapsed float64
	frames  int
	fps     float64
}

// NewFPSMeter creates a meter reporting every window seconds
func NewFPSMeter(window float64, initial float64) *FPSMeter {
	return &FPSMeter{window: window, fps: initial}
}

// Frame records one frame of deltaTime seconds.
// It reports true when a new measurement was taken.
func (m *FPSMeter) Frame(deltaTime float64) bool {
	m.elapsed += deltaTime
	m.frames++
	if m.elapsed < m.window {
		return false
	}
	m.fps = float64(m.frames) / m.elapsed
	m.frames = 0
	m.elapsed = 0
	return true
}

// FPS returns the latest measurement
func (m *FPSMeter) FPS() float64 {
	return m.fps
}

// Profiler captures CPU profiles and execution traces of a slow field
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration
}

// NewProfiler creates a profiler writing into profilesDir
func NewProfiler(profilesDir string) (*Profiler, error) {
	if err := os.MkdirAll(profilesDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profiles dir: %w", err)
	}

	return &Profiler{
		captureCooldown: 10 * time.Second, // Don't capture more than once every 10 seconds
		profilesDir:     profilesDir,
		captureDuration: 5 * time.Second,
	}, nil
}

// SlowFrameReport describes the field at the moment the frame rate dropped
type SlowFrameReport struct {
	FPS    float64
	Stats  FrameStats
	Linker string
}

func (r SlowFrameReport) String() string {
	return fmt.Sprintf("%.0f FPS, %d particles, %d links, %s linker",
		r.FPS, r.Stats.Particles, r.Stats.Links, r.Linker)
}

// fileBase names the capture files so slow frames can be grouped by workload
func (r SlowFrameReport) fileBase(at time.Time) string {
	return fmt.Sprintf("field-%s-fps%.0f-p%d-l%d-%s",
		at.Format("20060102-150405"), r.FPS, r.Stats.Particles, r.Stats.Links, r.Linker)
}

// recorder starts and stops one kind of runtime capture
type recorder struct {
	ext   string
	start func(io.Writer) error
	stop  func()
}

var recorders = []recorder{
	{ext: "cpu.prof", start: pprof.StartCPUProfile, stop: pprof.StopCPUProfile},
	{ext: "trace", start: trace.Start, stop: trace.Stop},
}

// CaptureSlowFrames records a CPU profile and an execution trace in the
// background while the field keeps running
func (p *Profiler) CaptureSlowFrames(report SlowFrameReport) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}
	if since := time.Since(p.lastCaptureTime); since < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", since)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()

	go p.record(report.fileBase(p.lastCaptureTime), report)
	return nil
}

// record runs every recorder concurrently for captureDuration
func (p *Profiler) record(base string, report SlowFrameReport) {
	defer func() {
		p.mu.Lock()
		p.isProfiling = false
		p.mu.Unlock()
	}()

	var wg sync.WaitGroup
	for _, r := range recorders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			path, err := p.runRecorder(r, base)
			if err != nil {
				log.Printf("Slow field capture failed (%s): %v", report, err)
				return
			}
			log.Printf("Slow field %s saved to: %s", r.ext, path)
		}()
	}
	wg.Wait()

	p.summarize(base, report)
}

func (p *Profiler) runRecorder(r recorder, base string) (string, error) {
	path := filepath.Join(p.profilesDir, base+"."+r.ext)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s file: %w", r.ext, err)
	}
	defer file.Close()

	if err := r.start(file); err != nil {
		return "", fmt.Errorf("failed to start %s capture: %w", r.ext, err)
	}
	time.Sleep(p.captureDuration)
	r.stop()

	return path, nil
}

// summarize logs the field state next to how to open the CPU profile
func (p *Profiler) summarize(base string, report SlowFrameReport) {
	profilePath := filepath.Join(p.profilesDir, base+".cpu.prof")

	info, err := os.Stat(profilePath)
	if err != nil {
		log.Printf("Warning: no CPU profile for slow field (%s): %v", report, err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	log.Printf("Slow field (%s): profile %.2f KB; view with: go tool pprof -http=:8080 %s",
		report, float64(info.Size())/1024, profilePath)
	log.Printf("Memory at capture: Alloc=%d KB HeapObjects=%d NumGC=%d",
		m.Alloc/1024, m.HeapObjects, m.NumGC)
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
