package game

// Cell is one bucket of the link grid, holding particle indices
type Cell struct {
	// Particle indices in this cell (preallocated slice)
	Indices []int
}

// NewCell creates a new cell with preallocated index storage
func NewCell(initialCapacity int) *Cell {
	return &Cell{
		Indices: make([]int, 0, initialCapacity),
	}
}

// Add appends a particle index to this cell
func (c *Cell) Add(index int) {
	c.Indices = append(c.Indices, index)
}

// Count returns the number of particles in this cell
func (c *Cell) Count() int {
	return len(c.Indices)
}

// Clear empties the cell but keeps its capacity
func (c *Cell) Clear() {
	c.Indices = c.Indices[:0]
}
