package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"runtime"
	"slices"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/game-of-colors/rules"
)

// historySize is how many recent generation hashes are kept for cycle detection
const historySize = 5

// Point is a cell coordinate
type Point struct {
	X, Y int
}

// neighborOffsets lists the eight surrounding cells
var neighborOffsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid holds the current generation of a Game of Colors board.
//
// Readers may call the accessors concurrently; Advance is the only writer and
// replaces the whole generation at once.
type Grid struct {
	width  int
	height int
	wrap   WrapMode

	mu         sync.RWMutex
	cells      []rules.Color // row-major
	generation int
	history    []string // Store recent grid states for cycle detection

	advanceMu sync.Mutex
	workers   int
	pool      *GridPool
}

// Option customizes a Grid at construction
type Option func(*Grid)

// WithWorkers sets how many goroutines evaluate a generation. n <= 0 means runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(g *Grid) {
		if n > 0 {
			g.workers = n
		}
	}
}

// WithPool reuses next-generation buffers from pool
func WithPool(pool *GridPool) Option {
	return func(g *Grid) {
		g.pool = pool
	}
}

// NewGrid creates a grid from a row-major slice of exactly width*height colors
func NewGrid(width, height int, wrap WrapMode, initial []rules.Color, opts ...Option) (*Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, errors.Wrap(err, "[NewGrid]")
	}
	if !wrap.Valid() {
		return nil, errors.Errorf("[NewGrid] unknown wrap mode: %d", wrap)
	}
	if len(initial) != width*height {
		return nil, errors.Wrapf(ErrShapeMismatch, "[NewGrid] got %d colors for %dx%d grid", len(initial), width, height)
	}
	for i, c := range initial {
		if !c.Valid() {
			return nil, errors.Wrapf(ErrShapeMismatch, "[NewGrid] invalid color %d at (%d,%d)", c, i%width, i/width)
		}
	}

	g := &Grid{
		width:   width,
		height:  height,
		wrap:    wrap,
		cells:   slices.Clone(initial),
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// NewGridFromMap creates a grid from a mapping that must cover every (x, y) exactly once
func NewGridFromMap(width, height int, wrap WrapMode, initial map[Point]rules.Color, opts ...Option) (*Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, errors.Wrap(err, "[NewGridFromMap]")
	}
	if len(initial) != width*height {
		return nil, errors.Wrapf(ErrShapeMismatch, "[NewGridFromMap] got %d entries for %dx%d grid", len(initial), width, height)
	}

	cells := make([]rules.Color, width*height)
	for p, c := range initial {
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			return nil, errors.Wrapf(ErrShapeMismatch, "[NewGridFromMap] entry (%d,%d) outside %dx%d grid", p.X, p.Y, width, height)
		}
		cells[p.Y*width+p.X] = c
	}
	return NewGrid(width, height, wrap, cells, opts...)
}

// NewEmptyGrid creates a grid with every cell Empty
func NewEmptyGrid(width, height int, wrap WrapMode, opts ...Option) (*Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, errors.Wrap(err, "[NewEmptyGrid]")
	}
	return NewGrid(width, height, wrap, make([]rules.Color, width*height), opts...)
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidDimension, "%dx%d", width, height)
	}
	return nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Wrap returns the grid's wrap mode
func (g *Grid) Wrap() WrapMode {
	return g.wrap
}

// Generation returns the number of committed advances
func (g *Grid) Generation() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.generation
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the color of a cell
func (g *Grid) Get(x, y int) (rules.Color, error) {
	if !g.inBounds(x, y) {
		return rules.Empty, errors.Wrapf(ErrOutOfRange, "[Get] (%d,%d) on %dx%d grid", x, y, g.width, g.height)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cells[y*g.width+x], nil
}

// Set sets the color of a cell
func (g *Grid) Set(x, y int, c rules.Color) error {
	if !g.inBounds(x, y) {
		return errors.Wrapf(ErrOutOfRange, "[Set] (%d,%d) on %dx%d grid", x, y, g.width, g.height)
	}
	if !c.Valid() {
		return errors.Wrapf(ErrInvalidColor, "[Set] %d at (%d,%d)", c, x, y)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cells[y*g.width+x] = c
	return nil
}

// forEachNeighbor calls fn with the slice index of every neighbor of (x, y).
// Toroidal grids always visit eight indexes, revisiting cells when a side is
// shorter than three; clipped grids skip positions outside the grid.
func (g *Grid) forEachNeighbor(x, y int, fn func(idx int)) error {
	if !g.inBounds(x, y) {
		return errors.Wrapf(ErrOutOfRange, "(%d,%d) on %dx%d grid", x, y, g.width, g.height)
	}
	for _, off := range neighborOffsets {
		nx, ny := x+off.X, y+off.Y
		if g.wrap == Toroidal {
			nx = (nx%g.width + g.width) % g.width
			ny = (ny%g.height + g.height) % g.height
		} else if !g.inBounds(nx, ny) {
			continue
		}
		fn(ny*g.width + nx)
	}
	return nil
}

// Neighbors returns the colors of the cells surrounding (x, y)
func (g *Grid) Neighbors(x, y int) ([]rules.Color, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	colors := make([]rules.Color, 0, len(neighborOffsets))
	err := g.forEachNeighbor(x, y, func(idx int) {
		colors = append(colors, g.cells[idx])
	})
	if err != nil {
		return nil, errors.Wrap(err, "[Neighbors]")
	}
	return colors, nil
}

// CountNeighbors tallies the colors surrounding (x, y)
func (g *Grid) CountNeighbors(x, y int) (rules.Counts, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	counts, err := g.countNeighbors(g.cells, x, y)
	if err != nil {
		return counts, errors.Wrap(err, "[CountNeighbors]")
	}
	return counts, nil
}

func (g *Grid) countNeighbors(cells []rules.Color, x, y int) (counts rules.Counts, err error) {
	err = g.forEachNeighbor(x, y, func(idx int) {
		counts[cells[idx]]++
	})
	return
}

// Advance computes the next generation with engine and commits it.
//
// Rows are evaluated in parallel against the current generation and written to
// a separate buffer. The buffer replaces the current generation only when every
// cell succeeded; on error the grid is left exactly as it was.
func (g *Grid) Advance(engine rules.Stepper) error {
	g.advanceMu.Lock()
	defer g.advanceMu.Unlock()

	next := g.pool.Get(g.width * g.height)

	g.mu.RLock()
	generation := g.generation
	err := g.computeNext(engine, g.cells, next)
	g.mu.RUnlock()

	if err != nil {
		g.pool.Put(next)
		return errors.Wrapf(err, "[Advance] generation %d", generation)
	}

	g.mu.Lock()
	prev := g.cells
	g.cells = next
	g.generation++
	g.mu.Unlock()

	g.pool.Put(prev)
	return nil
}

func (g *Grid) computeNext(engine rules.Stepper, cur, next []rules.Color) error {
	var (
		eg            errgroup.Group
		numWorkers    = max(1, g.workers)
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := range g.width {
					counts, err := g.countNeighbors(cur, x, y)
					if err != nil {
						return err
					}
					idx := y*g.width + x
					c := engine.Step(cur[idx], counts)
					if !c.Valid() {
						return errors.Wrapf(ErrInvalidColor, "rule produced %d at (%d,%d)", c, x, y)
					}
					next[idx] = c
				}
			}
			return nil
		})
	}

	return eg.Wait()
}

// Snapshot copies the current generation
func (g *Grid) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return Snapshot{
		Width:      g.width,
		Height:     g.height,
		Generation: g.generation,
		Wrap:       g.wrap,
		Cells:      slices.Clone(g.cells),
	}
}

// Population returns the number of cells of each color
func (g *Grid) Population() rules.Counts {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return rules.CountColors(g.cells)
}

// CountLivingCells returns the number of non-empty cells
func (g *Grid) CountLivingCells() int {
	pop := g.Population()
	return pop.Total() - pop[rules.Empty]
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.hashLocked()
}

func (g *Grid) hashLocked() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds the current state to history and maintains its size
func (g *Grid) UpdateHistory() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.history = append(g.history, g.hashLocked())
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the current state repeats one of the last three
// recorded states: a still life or an oscillator with period up to three.
// The current state must not have been recorded yet.
func (g *Grid) IsStagnant() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.history) < 3 {
		return false
	}

	currentHash := g.hashLocked()
	for _, h := range g.history[len(g.history)-3:] {
		if h == currentHash {
			return true
		}
	}
	return false
}

// Reseed replaces every cell with colors drawn by strategy and resets the
// generation counter and history
func (g *Grid) Reseed(strategy SeedStrategy, density float64, rng *rand.Rand) error {
	colors, err := SeedColors(g.width, g.height, strategy, density, rng)
	if err != nil {
		return errors.Wrap(err, "[Reseed]")
	}

	g.advanceMu.Lock()
	defer g.advanceMu.Unlock()
	g.mu.Lock()
	defer g.mu.Unlock()

	g.cells = colors
	g.generation = 0
	g.history = nil
	return nil
}

// InjectRandomLife sets count random cells to random chromatic colors to break stagnation
func (g *Grid) InjectRandomLife(count int, rng *rand.Rand) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for range count {
		idx := rng.IntN(len(g.cells))
		g.cells[idx] = rules.Chromatic[rng.IntN(len(rules.Chromatic))]
	}
}
