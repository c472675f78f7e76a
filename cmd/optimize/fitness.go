package main

import (
	"github.com/pthm-cable/taiga/components"
	"github.com/pthm-cable/taiga/config"
	"github.com/pthm-cable/taiga/sim"
)

// FitnessEvaluator runs headless simulations and computes fitness.
// Fitness is negative mean coexistence time across seeds: the longer
// both breeds stay alive, the lower (better) the fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int
	seeds      []uint64
	baseConfig *config.Config
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int, seeds []uint64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		seeds:      seeds,
		baseConfig: baseCfg,
	}
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(raw []float64) float64 {
	// All seeds share one parameterized copy of the base config.
	cfg := *fe.baseConfig
	fe.params.Apply(&cfg, raw)

	total := 0.0
	for _, seed := range fe.seeds {
		total += float64(fe.runOnce(&cfg, seed))
	}
	return -total / float64(len(fe.seeds))
}

// runOnce runs a single simulation and returns the number of ticks both
// breeds survived, capped at maxTicks.
func (fe *FitnessEvaluator) runOnce(cfg *config.Config, seed uint64) int {
	m := sim.New(cfg, seed)
	for i := 0; i < fe.maxTicks; i++ {
		m.Step()
		if m.Count(components.KindBear) == 0 || m.Count(components.KindSheep) == 0 {
			return m.Tick()
		}
	}
	return fe.maxTicks
}
