package beeclust

import (
	"strconv"

	"beeclust/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Behavior",
			Params: []core.Parameter{
				floatParam("p_changedir", "Direction change chance", params.PChangeDir),
				floatParam("p_wall", "Wall stop chance", params.PWall),
				floatParam("p_meet", "Meet stop chance", params.PMeet),
				floatParam("k_stay", "Stay coefficient", params.KStay),
				intParam("min_wait", "Minimum wait", params.MinWait),
			},
		},
		{
			Name: "Temperature",
			Params: []core.Parameter{
				floatParam("t_ideal", "Ideal temperature", params.TIdeal),
				floatParam("t_heater", "Heater temperature", params.THeater),
				floatParam("t_cooler", "Cooler temperature", params.TCooler),
				floatParam("t_env", "Environment temperature", params.TEnv),
				floatParam("k_temp", "Conductivity coefficient", params.KTemp),
			},
		},
		{
			Name: "Arena",
			Params: []core.Parameter{
				floatParam("wall_chance", "Wall chance", params.WallChance),
				intParam("heater_count", "Heaters", params.HeaterCount),
				intParam("cooler_count", "Coolers", params.CoolerCount),
				intParam("bee_count", "Bees", params.BeeCount),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the parameters adjustable from the HUD. Arena
// knobs take effect on the next reset; a k_temp change triggers a heat
// recalculation immediately, and the remaining knobs apply from the next tick.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "p_changedir", Label: "Direction change chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "p_wall", Label: "Wall stop chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "p_meet", Label: "Meet stop chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "k_stay", Label: "Stay coefficient", Type: core.ParamTypeFloat, Step: 5, Min: 0, HasMin: true},
		{Key: "min_wait", Label: "Minimum wait", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "t_ideal", Label: "Ideal temperature", Type: core.ParamTypeFloat, Step: 1},
		{Key: "k_temp", Label: "Conductivity coefficient", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true},
		{Key: "wall_chance", Label: "Wall chance", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "heater_count", Label: "Heaters", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "cooler_count", Label: "Coolers", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "bee_count", Label: "Bees", Type: core.ParamTypeInt, Step: 10, Min: 0, HasMin: true},
	}
}

// SetFloatParameter updates a float parameter by key, clamping to its
// bounds. It reports whether the key was recognized.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "p_changedir":
		w.cfg.Params.PChangeDir = clamp01(value)
	case "p_wall":
		w.cfg.Params.PWall = clamp01(value)
	case "p_meet":
		w.cfg.Params.PMeet = clamp01(value)
	case "k_stay":
		w.cfg.Params.KStay = clampMin(value, 0)
	case "t_ideal":
		w.cfg.Params.TIdeal = value
	case "k_temp":
		w.cfg.Params.KTemp = clampMin(value, 0)
		w.RecalculateHeat()
	case "wall_chance":
		w.cfg.Params.WallChance = clamp01(value)
	default:
		return false
	}
	return true
}

// SetIntParameter updates an integer parameter by key. It reports whether
// the key was recognized.
func (w *World) SetIntParameter(key string, value int) bool {
	if value < 0 {
		value = 0
	}
	switch key {
	case "min_wait":
		w.cfg.Params.MinWait = value
	case "heater_count":
		w.cfg.Params.HeaterCount = value
	case "cooler_count":
		w.cfg.Params.CoolerCount = value
	case "bee_count":
		w.cfg.Params.BeeCount = value
	default:
		return false
	}
	return true
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

func clampMin(v, min float64) float64 {
	if v < min {
		return min
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
