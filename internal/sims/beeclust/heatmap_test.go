package beeclust

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// calmConfig pins every random influence to zero so tests control the arena
// exactly.
func calmConfig() Config {
	cfg := DefaultConfig()
	cfg.Params.PChangeDir = 0
	cfg.Params.WallChance = 0
	cfg.Params.HeaterCount = 0
	cfg.Params.CoolerCount = 0
	cfg.Params.BeeCount = 0
	return cfg
}

func TestHeatRowBetweenHeaterAndCooler(t *testing.T) {
	cfg := calmConfig()
	cfg.Params.THeater = 35
	cfg.Params.TCooler = 5
	cfg.Params.TEnv = 20
	cfg.Params.KTemp = 0.9

	world, err := NewFromGrid([][]Cell{{Heater, Empty, Empty, Empty, Cooler}}, cfg)
	require.NoError(t, err)

	want := []float64{35, 29, 20, 11, 5}
	heat := world.Heatmap()
	require.Len(t, heat, len(want))
	for i, w := range want {
		assert.InDelta(t, w, heat[i], 1e-9, "cell %d", i)
	}
}

func TestHeaterAndCoolerCellsHoldExactTemperatures(t *testing.T) {
	world, err := NewFromGrid([][]Cell{
		{Heater, Empty, Cooler},
		{Empty, Empty, Empty},
	}, calmConfig())
	require.NoError(t, err)

	heat := world.Heatmap()
	assert.Equal(t, world.cfg.Params.THeater, heat[0])
	assert.Equal(t, world.cfg.Params.TCooler, heat[2])
}

func TestWallCellsAreNaN(t *testing.T) {
	world, err := NewFromGrid([][]Cell{
		{Wall, Empty, Heater},
		{Empty, Wall, Empty},
	}, calmConfig())
	require.NoError(t, err)

	cells := world.Grid()
	heat := world.Heatmap()
	for i := range cells {
		if cells[i] == Wall {
			assert.True(t, math.IsNaN(heat[i]), "wall cell %d must be NaN", i)
		} else {
			assert.False(t, math.IsNaN(heat[i]), "cell %d must be finite", i)
		}
	}
}

func TestWallBlocksHeatAndUnreachableFallsBackToEnv(t *testing.T) {
	world, err := NewFromGrid([][]Cell{{Heater, Wall, Empty}}, calmConfig())
	require.NoError(t, err)

	heat := world.Heatmap()
	assert.Equal(t, world.cfg.Params.THeater, heat[0])
	assert.True(t, math.IsNaN(heat[1]))
	// No path from the heater: the cell rests at the environment temperature.
	assert.InDelta(t, world.cfg.Params.TEnv, heat[2], 1e-9)
}

func TestCentralHeaterSpreadsChebyshev(t *testing.T) {
	cfg := calmConfig()
	rows := make([][]Cell, 5)
	for r := range rows {
		rows[r] = make([]Cell, 5)
	}
	rows[2][2] = Heater
	world, err := NewFromGrid(rows, cfg)
	require.NoError(t, err)

	p := world.cfg.Params
	heat := world.Heatmap()
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			d := max(abs(r-2), abs(c-2))
			want := p.THeater
			if d > 0 {
				want = p.TEnv + p.KTemp*(p.THeater-p.TEnv)/float64(d)
			}
			assert.InDelta(t, want, heat[r*5+c], 1e-9, "cell (%d,%d)", r, c)
		}
	}
}

func TestDiagonalStepCrossesWallCorner(t *testing.T) {
	// The two orthogonal cells between the heater and (1,1) are walls, yet
	// the diagonal step still counts as distance one.
	world, err := NewFromGrid([][]Cell{
		{Heater, Wall},
		{Wall, Empty},
	}, calmConfig())
	require.NoError(t, err)

	p := world.cfg.Params
	want := p.TEnv + p.KTemp*(p.THeater-p.TEnv)
	assert.InDelta(t, want, world.Heatmap()[3], 1e-9)
}

func TestBeesDoNotBlockHeat(t *testing.T) {
	world, err := NewFromGrid([][]Cell{{Heater, BeeSouth, Empty}}, calmConfig())
	require.NoError(t, err)

	dist := world.computeDistances(Heater)
	assert.Equal(t, []int32{0, 1, 2}, dist)
}

func TestComputeDistancesUnreachableStaysNegative(t *testing.T) {
	world, err := NewFromGrid([][]Cell{{Heater, Wall, Empty}}, calmConfig())
	require.NoError(t, err)

	dist := world.computeDistances(Heater)
	assert.Equal(t, []int32{0, -1, -1}, dist)

	// No cooler anywhere: every cell is unreachable.
	assert.Equal(t, []int32{-1, -1, -1}, world.computeDistances(Cooler))
}

func TestRecalculateHeatIdempotent(t *testing.T) {
	cfg := calmConfig()
	cfg.Params.WallChance = 0.1
	cfg.Params.HeaterCount = 2
	cfg.Params.CoolerCount = 2
	cfg.Params.BeeCount = 20
	world, err := NewWithConfig(cfg)
	require.NoError(t, err)
	world.Reset(7)

	first := append([]float64(nil), world.Heatmap()...)
	world.RecalculateHeat()
	second := world.Heatmap()
	require.Len(t, second, len(first))
	for i := range first {
		if math.IsNaN(first[i]) {
			assert.True(t, math.IsNaN(second[i]), "cell %d", i)
			continue
		}
		assert.Equal(t, first[i], second[i], "cell %d", i)
	}
}

func TestCustomTemperaturesAndConductivity(t *testing.T) {
	cfg := calmConfig()
	cfg.Params.THeater = 60
	cfg.Params.TCooler = -10
	cfg.Params.TEnv = 10
	cfg.Params.KTemp = 0.5

	world, err := NewFromGrid([][]Cell{{Heater, Empty, Empty}}, cfg)
	require.NoError(t, err)

	heat := world.Heatmap()
	assert.InDelta(t, 60.0, heat[0], 1e-9)
	assert.InDelta(t, 10+0.5*50.0, heat[1], 1e-9)
	assert.InDelta(t, 10+0.5*25.0, heat[2], 1e-9)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
