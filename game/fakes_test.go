package game

// sequenceSource replays a fixed list of values, cycling when exhausted
type sequenceSource struct {
	values []float64
	next   int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

type circleCall struct {
	X, Y, Radius float64
	Paint        Paint
}

type lineCall struct {
	X0, Y0, X1, Y1 float64
	Width          float64
	Paint          Paint
}

// recordingSurface records every draw call since the last Clear
type recordingSurface struct {
	clears  int
	calls   []string
	circles []circleCall
	lines   []lineCall
	resizes [][2]int
}

func (r *recordingSurface) Clear() {
	r.clears++
	r.calls = append(r.calls, "clear")
	r.circles = r.circles[:0]
	r.lines = r.lines[:0]
}

func (r *recordingSurface) FillCircle(x, y, radius float64, paint Paint) {
	r.calls = append(r.calls, "circle")
	r.circles = append(r.circles, circleCall{X: x, Y: y, Radius: radius, Paint: paint})
}

func (r *recordingSurface) StrokeLine(x0, y0, x1, y1, width float64, paint Paint) {
	r.calls = append(r.calls, "line")
	r.lines = append(r.lines, lineCall{X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Paint: paint})
}

func (r *recordingSurface) Resize(width, height int) {
	r.resizes = append(r.resizes, [2]int{width, height})
}

// manualSource is a frame source advanced explicitly by the test
type manualSource struct {
	pending   func()
	requests  int
	cancelled int
}

func (m *manualSource) Request(fn func()) {
	m.requests++
	m.pending = fn
}

func (m *manualSource) Cancel() {
	m.cancelled++
	m.pending = nil
}

// step fires the pending request and reports whether one was pending
func (m *manualSource) step() bool {
	fn := m.pending
	m.pending = nil
	if fn == nil {
		return false
	}
	fn()
	return true
}
