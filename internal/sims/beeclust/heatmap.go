package beeclust

import (
	"math"

	"beeclust/internal/core"
)

// computeDistances builds the shortest step count from every cell with the
// source code to each reachable cell, walking all eight directions. Walls
// block propagation and keep a distance of -1, as does anything the sources
// cannot reach. Diagonal steps count as one, so two diagonally adjacent
// cells are one step apart even when the orthogonal cells between them are
// walls.
//
// The update guard (dist < 0 or dist > d+1) makes the search monotone:
// every cell is enqueued at most once, so a queue of H*W jobs never
// overflows.
func (w *World) computeDistances(source Cell) []int32 {
	total := w.h * w.w
	dist := make([]int32, total)
	for i := range dist {
		dist[i] = -1
	}
	cells := w.grid.Cells()
	q := core.NewJobQueue(total)
	width := int32(w.w)
	for i, v := range cells {
		if v != source {
			continue
		}
		dist[i] = 0
		q.Put(int32(i)/width, int32(i)%width, 0)
	}
	height := int32(w.h)
	for !q.Empty() {
		job := q.Get()
		d := job.D + 1
		for _, off := range dirOffsets8 {
			nr := job.R + off[0]
			nc := job.C + off[1]
			if nr < 0 || nr >= height || nc < 0 || nc >= width {
				continue
			}
			idx := nr*width + nc
			if cells[idx] == Wall {
				continue
			}
			if dist[idx] < 0 || dist[idx] > d {
				dist[idx] = d
				q.Put(nr, nc, d)
			}
		}
	}
	return dist
}

// RecalculateHeat rebuilds the heatmap from the current arena. Call it after
// changing walls, heaters, or coolers; bee movement does not disturb the
// heat distribution.
//
// Wall cells become NaN. Heater and cooler cells hold their exact
// temperatures. Everything else combines the reciprocal distances to the
// nearest heater and cooler; an unreachable source contributes a negative
// term that the clamp discards, so fully isolated cells settle at T_env.
func (w *World) RecalculateHeat() {
	p := w.cfg.Params
	heaterDist := w.computeDistances(Heater)
	coolerDist := w.computeDistances(Cooler)

	heatGain := math.Abs(p.THeater - p.TEnv)
	coolGain := math.Abs(p.TCooler - p.TEnv)
	cells := w.grid.Cells()
	heat := w.heat.Cells()
	for i, v := range cells {
		switch {
		case v == Wall:
			heat[i] = math.NaN()
		case heaterDist[i] == 0:
			heat[i] = p.THeater
		case coolerDist[i] == 0:
			heat[i] = p.TCooler
		default:
			heating := (1 / float64(heaterDist[i])) * heatGain
			cooling := (1 / float64(coolerDist[i])) * coolGain
			heat[i] = p.TEnv + p.KTemp*(math.Max(0, heating)-math.Max(0, cooling))
		}
	}
}
