package game

import (
	"math"
)

// GridLinker buckets particles into square cells no smaller than Threshold, so a
// pair closer than the threshold always sits in the same or adjacent cells.
// Cells grow past Threshold when needed to keep about one cell per particle.
// The grid is rebuilt every call and reallocated only when its shape changes.
type GridLinker struct {
	Threshold float64

	// Preallocated 2D grid of cells, indexed [x][y]
	cells          [][]*Cell
	cellsX, cellsY int
	cellSize       float64
}

// NewGridLinker creates a grid linker for the given link distance
func NewGridLinker(threshold float64) *GridLinker {
	return &GridLinker{Threshold: threshold}
}

// Name returns LinkerGrid
func (g *GridLinker) Name() string {
	return LinkerGrid
}

// Links visits pairs by scanning each particle's 3x3 cell neighbourhood
func (g *GridLinker) Links(field *Field, visit LinkVisitor) {
	g.rebuild(field)

	particles := field.Particles
	for i := range particles {
		centerX, centerY := g.cellFor(particles[i].Pos.X, particles[i].Pos.Y)

		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				cell := g.cell(centerX+dx, centerY+dy)
				if cell == nil {
					continue
				}
				for _, j := range cell.Indices {
					// each pair is reported from its lower index only
					if j <= i {
						continue
					}
					distance := particles[i].DistanceTo(&particles[j])
					if distance < g.Threshold {
						visit(i, j, distance)
					}
				}
			}
		}
	}
}

// rebuild sizes the grid for the field and assigns every particle to a cell
func (g *GridLinker) rebuild(field *Field) {
	g.cellSize = gridCellSize(g.Threshold, field.Width, field.Height, field.Len())
	cellsX := max(1, int(math.Ceil(field.Width/g.cellSize)))
	cellsY := max(1, int(math.Ceil(field.Height/g.cellSize)))

	if cellsX != g.cellsX || cellsY != g.cellsY {
		g.cells = make([][]*Cell, cellsX)
		for x := 0; x < cellsX; x++ {
			g.cells[x] = make([]*Cell, cellsY)
			for y := 0; y < cellsY; y++ {
				g.cells[x][y] = NewCell(8)
			}
		}
		g.cellsX, g.cellsY = cellsX, cellsY
	} else {
		for x := range g.cells {
			for _, cell := range g.cells[x] {
				cell.Clear()
			}
		}
	}

	for i := range field.Particles {
		x, y := g.cellFor(field.Particles[i].Pos.X, field.Particles[i].Pos.Y)
		g.cells[x][y].Add(i)
	}
}

// gridCellSize returns the cell side for a width x height field of n particles
func gridCellSize(threshold, width, height float64, n int) float64 {
	return max(threshold, math.Sqrt(width*height/float64(max(1, n))))
}

// CellCount returns the number of cells allocated by the last Links call
func (g *GridLinker) CellCount() int {
	return g.cellsX * g.cellsY
}

// cellFor converts surface coordinates to cell coordinates.
// Particles that overshot an edge are clamped into the border cells;
// clamping never pulls two cells further apart, so no close pair is lost.
func (g *GridLinker) cellFor(x, y float64) (int, int) {
	cellX := int(math.Floor(x / g.cellSize))
	cellY := int(math.Floor(y / g.cellSize))

	cellX = max(0, min(cellX, g.cellsX-1))
	cellY = max(0, min(cellY, g.cellsY-1))

	return cellX, cellY
}

// cell returns the cell at the given cell coordinates, or nil outside the grid
func (g *GridLinker) cell(cellX, cellY int) *Cell {
	if cellX < 0 || cellX >= g.cellsX ||
		cellY < 0 || cellY >= g.cellsY {
		return nil
	}
	return g.cells[cellX][cellY]
}
