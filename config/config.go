// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/taiga/traits"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Population   PopulationConfig          `yaml:"population"`
	Reproduction ReproductionConfig        `yaml:"reproduction"`
	Hunting      HuntingConfig             `yaml:"hunting"`
	Combat       CombatConfig              `yaml:"combat"`
	Season       SeasonConfig              `yaml:"season"`
	Encounters   EncountersConfig          `yaml:"encounters"`
	Energy       EnergyConfig              `yaml:"energy"`
	Behaviors    map[string]BehaviorConfig `yaml:"behaviors"`
	Run          RunConfig                 `yaml:"run"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// PopulationConfig holds initial population sizes.
type PopulationConfig struct {
	Sheep      int `yaml:"sheep"`      // Starting sheep count
	Cowards    int `yaml:"cowards"`    // Starting coward bear count
	Aggressive int `yaml:"aggressive"` // Starting aggressive bear count
}

// ReproductionConfig holds reproduction probabilities and caps.
type ReproductionConfig struct {
	SheepChance float64 `yaml:"sheep_chance"` // Per-tick probability a sheep reproduces
	BearChance  float64 `yaml:"bear_chance"`  // Mating base chance, scaled by male level
	SheepLimit  int     `yaml:"sheep_limit"`  // Hard cap on the sheep population
}

// HuntingConfig holds hunting resolution parameters.
type HuntingConfig struct {
	SuccessChance float64 `yaml:"success_chance"` // Base chance, scaled by effective level
	XPForSheep    float64 `yaml:"xp_for_sheep"`   // XP reward for a consumed sheep
}

// CombatConfig holds bear-vs-bear combat parameters.
type CombatConfig struct {
	XPForBear float64 `yaml:"xp_for_bear"` // Flat XP reward for a combat kill
}

// SeasonConfig holds the mating season cycle.
type SeasonConfig struct {
	MatingFrequency int `yaml:"mating_frequency"` // Mating season every N ticks
}

// EncountersConfig holds encounter generation parameters.
type EncountersConfig struct {
	Rate float64 `yaml:"rate"` // Poisson rate of encounters per bear per tick
}

// EnergyConfig holds starting-energy parameters. Eating a sheep yields
// XP, not energy; GainFromFood only sizes the initial energy draw.
type EnergyConfig struct {
	GainFromFood int `yaml:"gain_from_food"`
}

// BehaviorConfig holds per-behavior founder defaults. Ranges are
// inclusive on both ends, matching how they read in YAML.
type BehaviorConfig struct {
	LitterMin int `yaml:"litter_min"` // Smallest litter size
	LitterMax int `yaml:"litter_max"` // Largest litter size
	CareMin   int `yaml:"care_min"`   // Shortest parental care, in ticks
	CareMax   int `yaml:"care_max"`   // Longest parental care, in ticks
}

// RunConfig holds run-length control.
type RunConfig struct {
	Ticks       int `yaml:"ticks"`        // Default run length
	LogInterval int `yaml:"log_interval"` // Ticks between progress log lines (0 = off)
}

// BearDefaults are the founder limits handed to bears created without
// parents. Upper bounds are exclusive, ready for uniform draws.
type BearDefaults struct {
	LowerCubLimit  int
	UpperCubLimit  int
	LowerCareLimit int
	UpperCareLimit int
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Defaults map[traits.Behavior]BearDefaults
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// computeDerived validates the behavior table and converts the
// inclusive YAML ranges into exclusive-upper founder defaults.
func (c *Config) computeDerived() error {
	c.Derived.Defaults = make(map[traits.Behavior]BearDefaults, len(traits.Behaviors))
	for _, b := range traits.Behaviors {
		bc, ok := c.Behaviors[b.String()]
		if !ok {
			return fmt.Errorf("behaviors: missing entry for %q", b)
		}
		if bc.LitterMax < bc.LitterMin || bc.CareMax < bc.CareMin {
			return fmt.Errorf("behaviors: inverted range for %q", b)
		}
		c.Derived.Defaults[b] = BearDefaults{
			LowerCubLimit:  bc.LitterMin,
			UpperCubLimit:  bc.LitterMax + 1,
			LowerCareLimit: bc.CareMin,
			UpperCareLimit: bc.CareMax + 1,
		}
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
