package beeclust

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds the tunable probabilities, coefficients, and temperatures of
// the simulation, plus the arena seeding knobs used by Reset.
type Params struct {
	PChangeDir float64 `yaml:"p_changedir"`
	PWall      float64 `yaml:"p_wall"`
	PMeet      float64 `yaml:"p_meet"`

	KTemp float64 `yaml:"k_temp"`
	KStay float64 `yaml:"k_stay"`

	TIdeal  float64 `yaml:"t_ideal"`
	THeater float64 `yaml:"t_heater"`
	TCooler float64 `yaml:"t_cooler"`
	TEnv    float64 `yaml:"t_env"`

	MinWait int `yaml:"min_wait"`

	WallChance  float64 `yaml:"wall_chance"`
	HeaterCount int     `yaml:"heater_count"`
	CoolerCount int     `yaml:"cooler_count"`
	BeeCount    int     `yaml:"bee_count"`
}

// Config controls the BeeClust world dimensions and parameters.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  128,
		Height: 96,
		Seed:   1337,
		Params: Params{
			PChangeDir:  0.2,
			PWall:       0.8,
			PMeet:       0.8,
			KTemp:       0.9,
			KStay:       50,
			TIdeal:      35,
			THeater:     40,
			TCooler:     5,
			TEnv:        22,
			MinWait:     2,
			WallChance:  0.04,
			HeaterCount: 3,
			CoolerCount: 2,
			BeeCount:    320,
		},
	}
}

// Validate checks the parameter constraints: probabilities within [0, 1],
// non-negative coefficients and counts, and T_cooler <= T_env <= T_heater.
func (c Config) Validate() error {
	p := c.Params
	for name, v := range map[string]float64{
		"p_changedir": p.PChangeDir,
		"p_wall":      p.PWall,
		"p_meet":      p.PMeet,
		"wall_chance": p.WallChance,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s=%v", ErrProbability, name, v)
		}
	}
	for name, v := range map[string]float64{
		"k_temp":       p.KTemp,
		"k_stay":       p.KStay,
		"min_wait":     float64(p.MinWait),
		"heater_count": float64(p.HeaterCount),
		"cooler_count": float64(p.CoolerCount),
		"bee_count":    float64(p.BeeCount),
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s=%v", ErrNegativeParam, name, v)
		}
	}
	if !(p.TCooler <= p.TEnv && p.TEnv <= p.THeater) {
		return fmt.Errorf("%w: t_cooler=%v t_env=%v t_heater=%v",
			ErrTemperatureOrder, p.TCooler, p.TEnv, p.THeater)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	prob := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
				*dst = parsed
			}
		}
	}
	prob("p_changedir", &c.Params.PChangeDir)
	prob("p_wall", &c.Params.PWall)
	prob("p_meet", &c.Params.PMeet)
	prob("wall_chance", &c.Params.WallChance)
	if v, ok := cfg["k_temp"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.KTemp = parsed
		}
	}
	if v, ok := cfg["k_stay"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.KStay = parsed
		}
	}
	temp := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	temp("t_ideal", &c.Params.TIdeal)
	temp("t_heater", &c.Params.THeater)
	temp("t_cooler", &c.Params.TCooler)
	temp("t_env", &c.Params.TEnv)
	if !(c.Params.TCooler <= c.Params.TEnv && c.Params.TEnv <= c.Params.THeater) {
		d := DefaultConfig()
		c.Params.TIdeal = d.Params.TIdeal
		c.Params.THeater = d.Params.THeater
		c.Params.TCooler = d.Params.TCooler
		c.Params.TEnv = d.Params.TEnv
	}
	count := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	count("min_wait", &c.Params.MinWait)
	count("heater_count", &c.Params.HeaterCount)
	count("cooler_count", &c.Params.CoolerCount)
	count("bee_count", &c.Params.BeeCount)
	return c
}

// LoadConfig reads a YAML configuration file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}
