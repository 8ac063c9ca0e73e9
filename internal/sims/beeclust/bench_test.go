package beeclust

import "testing"

// The kernels must stay fast on arenas around a million cells; these
// benchmarks mirror that budget.

func benchWorld(b *testing.B) *World {
	b.Helper()
	cfg := DefaultConfig()
	cfg.Width = 1000
	cfg.Height = 1000
	cfg.Params.WallChance = 0.03
	cfg.Params.HeaterCount = 10
	cfg.Params.CoolerCount = 10
	cfg.Params.BeeCount = 50000
	world, err := NewWithConfig(cfg)
	if err != nil {
		b.Fatal(err)
	}
	world.Reset(1)
	return world
}

func BenchmarkRecalculateHeat(b *testing.B) {
	world := benchWorld(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.RecalculateHeat()
	}
}

func BenchmarkSwarms(b *testing.B) {
	world := benchWorld(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.Swarms()
	}
}

func BenchmarkTick(b *testing.B) {
	world := benchWorld(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.Tick()
	}
}
