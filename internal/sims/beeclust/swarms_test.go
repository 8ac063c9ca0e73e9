package beeclust

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwarmsEmptyArena(t *testing.T) {
	world, err := NewFromGrid([][]Cell{{Empty, Empty}, {Empty, Empty}}, calmConfig())
	require.NoError(t, err)
	assert.Empty(t, world.Swarms())
}

func TestSwarmsWallsOnly(t *testing.T) {
	world, err := NewFromGrid([][]Cell{{Wall, Wall}, {Wall, Wall}}, calmConfig())
	require.NoError(t, err)
	assert.Empty(t, world.Swarms())
}

func TestSwarmsSingleBee(t *testing.T) {
	world, err := NewFromGrid([][]Cell{{BeeNorth}}, calmConfig())
	require.NoError(t, err)
	assert.Equal(t, [][]Coord{{{R: 0, C: 0}}}, world.Swarms())
}

func TestSwarmsWallSplitsNeighbors(t *testing.T) {
	world, err := NewFromGrid([][]Cell{
		{BeeNorth, Wall, BeeNorth},
		{Empty, BeeNorth, Empty},
	}, calmConfig())
	require.NoError(t, err)

	want := [][]Coord{
		{{R: 0, C: 0}},
		{{R: 0, C: 2}},
		{{R: 1, C: 1}},
	}
	assert.Equal(t, want, world.Swarms())
}

func TestSwarmsDiagonalIsNotAdjacent(t *testing.T) {
	world, err := NewFromGrid([][]Cell{
		{BeeEast, Empty},
		{Empty, BeeWest},
	}, calmConfig())
	require.NoError(t, err)
	assert.Len(t, world.Swarms(), 2)
}

func TestSwarmsWaitingBeesJoin(t *testing.T) {
	world, err := NewFromGrid([][]Cell{{-3, BeeEast, -1}}, calmConfig())
	require.NoError(t, err)

	swarms := world.Swarms()
	require.Len(t, swarms, 1)
	assert.Equal(t, []Coord{{R: 0, C: 0}, {R: 0, C: 1}, {R: 0, C: 2}}, swarms[0])
}

func TestSwarmsBFSDiscoveryOrder(t *testing.T) {
	world, err := NewFromGrid([][]Cell{
		{BeeNorth, BeeNorth, Empty},
		{BeeNorth, Empty, Empty},
		{BeeNorth, BeeNorth, BeeNorth},
	}, calmConfig())
	require.NoError(t, err)

	swarms := world.Swarms()
	require.Len(t, swarms, 1)
	// Seeded at (0,0); neighbors expand north, east, south, west from each
	// dequeued cell.
	want := []Coord{
		{R: 0, C: 0}, {R: 0, C: 1}, {R: 1, C: 0},
		{R: 2, C: 0}, {R: 2, C: 1}, {R: 2, C: 2},
	}
	assert.Equal(t, want, swarms[0])
}

func TestSwarmsPartitionBees(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 48
	cfg.Height = 36
	cfg.Params.BeeCount = 300
	cfg.Params.WallChance = 0.08
	world, err := NewWithConfig(cfg)
	require.NoError(t, err)
	world.Reset(99)

	swarms := world.Swarms()
	seen := map[Coord]bool{}
	cells := world.Grid()
	for _, swarm := range swarms {
		require.NotEmpty(t, swarm)
		for _, pos := range swarm {
			require.False(t, seen[pos], "coordinate %v appears twice", pos)
			seen[pos] = true
			assert.True(t, cells[pos.R*cfg.Width+pos.C].IsBee())
		}
	}
	assert.Len(t, seen, world.BeeCount())
}

func TestSwarmsPureFunctionOfGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	world, err := NewWithConfig(cfg)
	require.NoError(t, err)
	world.Reset(5)

	assert.Equal(t, world.Swarms(), world.Swarms())
}
