//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"beeclust/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type heatProvider interface {
	Heatmap() []float64
	HeatBounds() (float64, float64)
}

// Overlay draws a translucent temperature layer on top of the arena.
type Overlay struct {
	sim      core.Sim
	scale    int
	showHeat bool
	heatImg  *ebiten.Image
	heatBuf  []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the overlay layers from keyboard input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHeat = !o.showHeat
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showHeat {
		return
	}
	provider, ok := o.sim.(heatProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	heat := provider.Heatmap()
	if len(heat) != total {
		return
	}

	if o.heatImg == nil || o.heatImg.Bounds().Dx() != size.W || o.heatImg.Bounds().Dy() != size.H {
		o.heatImg = ebiten.NewImage(size.W, size.H)
		o.heatBuf = make([]byte, 4*total)
	}

	lo, hi := provider.HeatBounds()
	span := hi - lo
	if span <= 0 {
		span = 1
	}
	for i := 0; i < total; i++ {
		base := i * 4
		v := heat[i]
		if math.IsNaN(v) {
			o.heatBuf[base+0] = 0
			o.heatBuf[base+1] = 0
			o.heatBuf[base+2] = 0
			o.heatBuf[base+3] = 0
			continue
		}
		col := heatColor(clamp01((v - lo) / span))
		o.heatBuf[base+0] = col.R
		o.heatBuf[base+1] = col.G
		o.heatBuf[base+2] = col.B
		o.heatBuf[base+3] = col.A
	}
	o.heatImg.ReplacePixels(o.heatBuf)

	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.heatImg, op)
}

// heatColor maps a normalized temperature to a cold-to-hot ramp.
func heatColor(t float64) color.RGBA {
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 50, G: 110, B: 230, A: 130}},
		{0.5, color.RGBA{R: 225, G: 215, B: 110, A: 130}},
		{1.0, color.RGBA{R: 230, G: 55, B: 35, A: 150}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, clamp01(local))
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
