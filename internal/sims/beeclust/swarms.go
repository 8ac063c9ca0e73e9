package beeclust

import "beeclust/internal/core"

// Swarms partitions the bee cells into connected components under
// 4-neighborhood adjacency. The outer slice is ordered by the row-major
// position of each swarm's first bee; within a swarm the bees appear in BFS
// discovery order seeded at that position. Every bee cell appears in exactly
// one swarm.
func (w *World) Swarms() [][]Coord {
	cells := w.grid.Cells()
	total := w.h * w.w
	done := make([]bool, total)
	q := core.NewJobQueue(total)

	var swarms [][]Coord
	for r := 0; r < w.h; r++ {
		for c := 0; c < w.w; c++ {
			idx := r*w.w + c
			if done[idx] || !cells[idx].IsBee() {
				continue
			}
			swarm := []Coord{{R: r, C: c}}
			done[idx] = true
			q.Reset()
			q.Put(int32(r), int32(c), 0)
			for !q.Empty() {
				job := q.Get()
				for dir := BeeNorth; dir <= BeeWest; dir++ {
					off := dirOffsets4[dir]
					nr := int(job.R) + off[0]
					nc := int(job.C) + off[1]
					if nr < 0 || nr >= w.h || nc < 0 || nc >= w.w {
						continue
					}
					nIdx := nr*w.w + nc
					if done[nIdx] || !cells[nIdx].IsBee() {
						continue
					}
					done[nIdx] = true
					swarm = append(swarm, Coord{R: nr, C: nc})
					q.Put(int32(nr), int32(nc), 0)
				}
			}
			swarms = append(swarms, swarm)
		}
	}
	return swarms
}
