//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"beeclust/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type statsProvider interface {
	Ticks() int
	Moved() int
	BeeCount() int
	SwarmCount() int
	Score() (float64, error)
}

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the stats and parameter panel to the right of the arena.
// Up/Down selects a control, Left/Right nudges it by its step.
type HUD struct {
	sim    core.Sim
	width  int
	panel  *ebiten.Image
	height int

	controls []core.ParameterControl
	values   map[string]string
	selected int

	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{sim: sim, width: width, values: map[string]string{}}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update refreshes the cached parameter values and handles HUD input.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if provider, ok := h.sim.(parameterProvider); ok {
		snapshot := provider.Parameters()
		for _, group := range snapshot.Groups {
			for _, param := range group.Params {
				h.values[param.Key] = param.Value
			}
		}
	}
	h.handleInput()
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		h.selected = (h.selected + len(h.controls) - 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	delta := 0.0
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		delta = -1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		delta = 1
	}
	if delta == 0 {
		return
	}
	h.adjust(h.controls[h.selected], delta)
}

func (h *HUD) adjust(ctrl core.ParameterControl, direction float64) {
	raw, ok := h.values[ctrl.Key]
	if !ok {
		return
	}
	switch ctrl.Type {
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return
		}
		v += direction * ctrl.Step
		if ctrl.HasMin && v < ctrl.Min {
			v = ctrl.Min
		}
		if ctrl.HasMax && v > ctrl.Max {
			v = ctrl.Max
		}
		h.floatSetter.SetFloatParameter(ctrl.Key, v)
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return
		}
		step := int(ctrl.Step)
		if step == 0 {
			step = 1
		}
		v += int(direction) * step
		if ctrl.HasMin && float64(v) < ctrl.Min {
			v = int(ctrl.Min)
		}
		if ctrl.HasMax && float64(v) > ctrl.Max {
			v = int(ctrl.Max)
		}
		h.intSetter.SetIntParameter(ctrl.Key, v)
	}
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.height != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.height = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	line := 16
	y := line
	draw := func(s string, col color.Color) {
		text.Draw(h.panel, s, face, 10, y, col)
		y += line
	}
	dim := color.RGBA{R: 150, G: 150, B: 160, A: 255}
	bright := color.RGBA{R: 235, G: 235, B: 240, A: 255}

	draw("Beeclust", bright)
	y += line / 2
	if stats, ok := h.sim.(statsProvider); ok {
		draw(fmt.Sprintf("tick    %d", stats.Ticks()), dim)
		draw(fmt.Sprintf("moved   %d", stats.Moved()), dim)
		draw(fmt.Sprintf("bees    %d", stats.BeeCount()), dim)
		draw(fmt.Sprintf("swarms  %d", stats.SwarmCount()), dim)
		if score, err := stats.Score(); err == nil {
			draw(fmt.Sprintf("score   %.2f", score), dim)
		} else {
			draw("score   --", dim)
		}
		y += line / 2
	}

	for i, ctrl := range h.controls {
		marker := "  "
		col := dim
		if i == h.selected {
			marker = "> "
			col = bright
		}
		draw(fmt.Sprintf("%s%s: %s", marker, ctrl.Label, h.values[ctrl.Key]), col)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
