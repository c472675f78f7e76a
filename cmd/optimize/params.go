// Package main provides CMA-ES optimization for simulation parameters.
package main

import (
	"github.com/pthm-cable/taiga/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "sheep_reproduce", Path: "reproduction.sheep_chance", Min: 0.01, Max: 0.30, Default: 0.08},
			{Name: "bear_reproduce", Path: "reproduction.bear_chance", Min: 0.01, Max: 0.20, Default: 0.05},
			{Name: "hunt_success_chance", Path: "hunting.success_chance", Min: 0.01, Max: 0.20, Default: 0.06},
			{Name: "encounter_rate", Path: "encounters.rate", Min: 0.1, Max: 3.0, Default: 1.0},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp restricts raw values to their [Min, Max] bounds.
func (pv *ParamVector) Clamp(raw []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v := raw[i]
		if v < spec.Min {
			v = spec.Min
		}
		if v > spec.Max {
			v = spec.Max
		}
		clamped[i] = v
	}
	return clamped
}

// Apply writes clamped raw values into a config copy.
func (pv *ParamVector) Apply(cfg *config.Config, raw []float64) {
	clamped := pv.Clamp(raw)
	for i, spec := range pv.Specs {
		switch spec.Name {
		case "sheep_reproduce":
			cfg.Reproduction.SheepChance = clamped[i]
		case "bear_reproduce":
			cfg.Reproduction.BearChance = clamped[i]
		case "hunt_success_chance":
			cfg.Hunting.SuccessChance = clamped[i]
		case "encounter_rate":
			cfg.Encounters.Rate = clamped[i]
		}
	}
}
