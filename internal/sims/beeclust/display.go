package beeclust

import "image/color"

// Display palette indices. The display buffer collapses the signed cell
// codes into a small unsigned range the renderer can index directly.
const (
	displayEmpty uint8 = iota
	displayBeeNorth
	displayBeeEast
	displayBeeSouth
	displayBeeWest
	displayWaiting
	displayWall
	displayHeater
	displayCooler
)

var beeclustPalette = []color.RGBA{
	displayEmpty:    {R: 24, G: 24, B: 28, A: 255},
	displayBeeNorth: {R: 250, G: 210, B: 60, A: 255},
	displayBeeEast:  {R: 240, G: 190, B: 50, A: 255},
	displayBeeSouth: {R: 225, G: 172, B: 40, A: 255},
	displayBeeWest:  {R: 235, G: 200, B: 75, A: 255},
	displayWaiting:  {R: 155, G: 120, B: 35, A: 255},
	displayWall:     {R: 95, G: 95, B: 105, A: 255},
	displayHeater:   {R: 215, G: 65, B: 45, A: 255},
	displayCooler:   {R: 60, G: 120, B: 220, A: 255},
}

// Palette exposes the color palette used for rendering the arena.
func (w *World) Palette() []color.RGBA {
	return beeclustPalette
}

func encodeDisplayValue(v Cell) uint8 {
	switch {
	case v < 0:
		return displayWaiting
	case v >= BeeNorth && v <= BeeWest:
		return displayBeeNorth + uint8(v-BeeNorth)
	case v == Wall:
		return displayWall
	case v == Heater:
		return displayHeater
	case v == Cooler:
		return displayCooler
	default:
		return displayEmpty
	}
}

func (w *World) rebuildDisplay() {
	cells := w.grid.Cells()
	for i, v := range cells {
		w.display[i] = encodeDisplayValue(v)
	}
}
