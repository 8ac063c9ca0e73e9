// Package beeclust implements a BeeClust swarm simulation: bees roam a
// bounded grid, pile up near comfortable temperatures, and wait longer the
// closer the local temperature is to their ideal.
package beeclust

import (
	"gonum.org/v1/gonum/stat"

	"beeclust/internal/core"
)

// Cell is a single grid value. Non-negative values are the codes below; a
// negative value -k is a bee waiting for k more ticks.
type Cell int16

const (
	Empty Cell = iota
	BeeNorth
	BeeEast
	BeeSouth
	BeeWest
	Wall
	Heater
	Cooler
)

// waitExpired is the last countdown value; the next tick turns the bee into
// an active bee with a random direction.
const waitExpired Cell = -1

// IsBee reports whether the value holds an active or waiting bee.
func (v Cell) IsBee() bool {
	return v < 0 || (BeeNorth <= v && v <= BeeWest)
}

// Coord addresses a grid cell by row and column.
type Coord struct {
	R, C int
}

// Offsets indexed by direction code: north, east, south, west.
var dirOffsets4 = [5][2]int{
	BeeNorth: {-1, 0},
	BeeEast:  {0, 1},
	BeeSouth: {1, 0},
	BeeWest:  {0, -1},
}

var dirOffsets8 = [8][2]int32{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, 1}, {-1, -1}, {1, -1},
}

// World stores the full state of one BeeClust simulation.
type World struct {
	cfg Config

	h, w    int
	grid    *core.Grid[Cell]
	heat    *core.Grid[float64]
	display []uint8

	rng   *core.RNG
	moved int
	ticks int
}

// New returns a BeeClust world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	world, err := NewWithConfig(cfg)
	if err != nil {
		panic(err)
	}
	return world
}

// NewWithConfig returns an empty world configured from the provided options.
// The arena is populated by Reset; the heatmap is consistent on return.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid := core.NewGrid[Cell](cfg.Height, cfg.Width)
	w := &World{
		cfg:     cfg,
		h:       grid.H,
		w:       grid.W,
		grid:    grid,
		heat:    core.NewGrid[float64](grid.H, grid.W),
		rng:     core.NewRNG(cfg.Seed),
		display: make([]uint8, grid.H*grid.W),
	}
	w.RecalculateHeat()
	w.rebuildDisplay()
	return w, nil
}

// NewFromGrid adopts a caller-supplied arena. The rows must be non-empty and
// rectangular; the config dimensions are taken from the rows.
func NewFromGrid(rows [][]Cell, cfg Config) (*World, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrRaggedGrid
		}
	}
	cfg.Height = len(rows)
	cfg.Width = width
	w, err := NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	cells := w.grid.Cells()
	for r, row := range rows {
		copy(cells[r*width:(r+1)*width], row)
	}
	w.RecalculateHeat()
	w.rebuildDisplay()
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "beeclust" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the display buffer consumed by the renderer.
func (w *World) Cells() []uint8 { return w.display }

// Grid exposes the raw cell values.
func (w *World) Grid() []Cell { return w.grid.Cells() }

// Heatmap exposes the per-cell temperatures. Wall cells hold NaN.
func (w *World) Heatmap() []float64 { return w.heat.Cells() }

// HeatBounds returns the cooler and heater temperatures. Heater and cooler
// cells hold exactly these values; other cells stay between them while
// k_temp is at most 1 and can lie outside them for a larger k_temp.
func (w *World) HeatBounds() (float64, float64) {
	return w.cfg.Params.TCooler, w.cfg.Params.THeater
}

// Moved returns the number of bees that moved during the last tick.
func (w *World) Moved() int { return w.moved }

// Ticks returns the number of ticks since the last reset.
func (w *World) Ticks() int { return w.ticks }

// Reset rebuilds the arena using deterministic randomness: scattered walls,
// then heaters, coolers, and bees on free cells, then a heat recalculation.
// A zero seed falls back to the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	w.moved = 0
	w.ticks = 0

	p := w.cfg.Params
	cells := w.grid.Cells()
	for i := range cells {
		if w.rng.Float64() < p.WallChance {
			cells[i] = Wall
		} else {
			cells[i] = Empty
		}
	}
	w.scatter(Heater, p.HeaterCount)
	w.scatter(Cooler, p.CoolerCount)
	for placed, attempts := 0, 0; placed < p.BeeCount && attempts < 64*len(cells); attempts++ {
		idx := w.rng.IntN(len(cells))
		if cells[idx] != Empty {
			continue
		}
		cells[idx] = Cell(w.rng.Between(int(BeeNorth), int(BeeWest)))
		placed++
	}

	w.RecalculateHeat()
	w.rebuildDisplay()
}

func (w *World) scatter(code Cell, count int) {
	cells := w.grid.Cells()
	for placed, attempts := 0, 0; placed < count && attempts < 64*len(cells); attempts++ {
		idx := w.rng.IntN(len(cells))
		if cells[idx] != Empty {
			continue
		}
		cells[idx] = code
		placed++
	}
}

// Step advances the simulation by one tick and refreshes the display buffer.
func (w *World) Step() {
	w.moved = w.Tick()
	w.ticks++
	w.rebuildDisplay()
}

// Bees enlists the coordinates of every active or waiting bee in row-major
// order.
func (w *World) Bees() []Coord {
	var bees []Coord
	cells := w.grid.Cells()
	for r := 0; r < w.h; r++ {
		for c := 0; c < w.w; c++ {
			if cells[r*w.w+c].IsBee() {
				bees = append(bees, Coord{R: r, C: c})
			}
		}
	}
	return bees
}

// BeeCount returns the number of bee cells on the grid.
func (w *World) BeeCount() int {
	count := 0
	for _, v := range w.grid.Cells() {
		if v.IsBee() {
			count++
		}
	}
	return count
}

// SwarmCount returns the number of connected bee groups.
func (w *World) SwarmCount() int { return len(w.Swarms()) }

// Forget makes every bee drop its direction; each becomes a waiting bee that
// picks a fresh random direction on the next tick.
func (w *World) Forget() {
	cells := w.grid.Cells()
	for i, v := range cells {
		if v.IsBee() {
			cells[i] = waitExpired
		}
	}
	w.rebuildDisplay()
}

// Score is the mean temperature under the bees. It reports ErrNoBees when
// the grid holds none.
func (w *World) Score() (float64, error) {
	heat := w.heat.Cells()
	cells := w.grid.Cells()
	var temps []float64
	for i, v := range cells {
		if v.IsBee() {
			temps = append(temps, heat[i])
		}
	}
	if len(temps) == 0 {
		return 0, ErrNoBees
	}
	return stat.Mean(temps, nil), nil
}

func init() {
	core.Register("beeclust", func(cfg map[string]string) core.Sim {
		world, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil
		}
		return world
	})
}
