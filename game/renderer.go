package game

// FrameStats describes the most recently rendered frame
type FrameStats struct {
	Particles int // discs drawn
	Links     int // lines drawn
}

// Renderer draws the particle field onto a surface
type Renderer struct {
	config Config
	linker Linker
	last   FrameStats
}

// NewRenderer creates a new renderer using the given pair strategy
func NewRenderer(config Config, linker Linker) *Renderer {
	return &Renderer{
		config: config,
		linker: linker,
	}
}

// Draw clears the surface, draws every particle as a disc, then joins every
// pair closer than the link distance with a line that fades with length
func (r *Renderer) Draw(field *Field, surface Surface) {
	surface.Clear()

	particlePaint := r.config.ParticlePaint()
	for i := range field.Particles {
		p := &field.Particles[i]
		surface.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, particlePaint)
	}

	links := 0
	r.linker.Links(field, func(i, j int, distance float64) {
		a, b := field.Particles[i].Pos, field.Particles[j].Pos
		surface.StrokeLine(a.X, a.Y, b.X, b.Y, r.config.LineWidth, r.config.LinkPaint(distance))
		links++
	})

	r.last = FrameStats{
		Particles: len(field.Particles),
		Links:     links,
	}
}

// LastFrame returns statistics for the most recent Draw
func (r *Renderer) LastFrame() FrameStats {
	return r.last
}

// Linker returns the pair strategy in use
func (r *Renderer) Linker() Linker {
	return r.linker
}
