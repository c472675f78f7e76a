// Package sim implements the bear/sheep predation model: a
// discrete-time agent simulation where bears level up by hunting sheep
// and fighting each other, mate in season, and raise cubs under
// temporary parental care.
package sim

import (
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/taiga/components"
	"github.com/pthm-cable/taiga/config"
	"github.com/pthm-cable/taiga/schedule"
	"github.com/pthm-cable/taiga/telemetry"
)

// Season is the phase gating which encounters may lead to reproduction.
type Season uint8

const (
	SeasonNormal Season = iota
	SeasonMating
)

// String returns the reporting name of the season.
func (s Season) String() string {
	if s == SeasonMating {
		return "mating"
	}
	return "normal"
}

// Model owns the world, the global parameters, the season cycle and the
// random source, and advances the population one tick at a time.
type Model struct {
	cfg   *config.Config
	world *ecs.World
	rng   *rand.Rand
	sched *schedule.Scheduler

	sheepMapper *ecs.Map1[components.Sheep]
	bearMapper  *ecs.Map1[components.Bear]
	sheepFilter *ecs.Filter1[components.Sheep]
	bearFilter  *ecs.Filter1[components.Bear]

	season    Season
	nextID    uint32
	collector *telemetry.Collector
}

// New creates a model with the starting population of the config.
// Runs with the same config and seed are identical.
func New(cfg *config.Config, seed uint64) *Model {
	world := ecs.NewWorld()

	m := &Model{
		cfg:         cfg,
		world:       world,
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		sheepMapper: ecs.NewMap1[components.Sheep](world),
		bearMapper:  ecs.NewMap1[components.Bear](world),
		sheepFilter: ecs.NewFilter1[components.Sheep](world),
		bearFilter:  ecs.NewFilter1[components.Bear](world),
		nextID:      1,
		collector:   telemetry.NewCollector(),
	}

	m.sched = schedule.New(world, m.rng)
	m.sched.Register(components.KindSheep, m.sheepSnapshot, m.stepSheep)
	m.sched.Register(components.KindBear, m.bearSnapshot, m.stepBear)

	m.spawnInitialPopulation()

	return m
}

// Step advances the simulation by one tick: the season is set from the
// tick index, then every breed is activated in a shuffled order.
func (m *Model) Step() {
	if m.sched.Tick()%m.cfg.Season.MatingFrequency == 0 {
		m.season = SeasonMating
	} else {
		m.season = SeasonNormal
	}
	m.sched.Step()
}

// Run advances the model by the given number of ticks.
func (m *Model) Run(ticks int) {
	for i := 0; i < ticks; i++ {
		m.Step()
	}
}

// Tick returns the number of completed ticks.
func (m *Model) Tick() int {
	return m.sched.Tick()
}

// Season returns the phase the current (or next) tick runs under.
func (m *Model) Season() Season {
	return m.season
}

// Count returns the current live count of a breed.
func (m *Model) Count(kind components.Kind) int {
	return m.sched.Count(kind)
}

// Collector returns the event collector recording this model's
// interaction events.
func (m *Model) Collector() *telemetry.Collector {
	return m.collector
}

// sheepSnapshot lists all live sheep.
func (m *Model) sheepSnapshot() []ecs.Entity {
	var out []ecs.Entity
	query := m.sheepFilter.Query()
	for query.Next() {
		out = append(out, query.Entity())
	}
	return out
}

// bearSnapshot lists all live bears.
func (m *Model) bearSnapshot() []ecs.Entity {
	var out []ecs.Entity
	query := m.bearFilter.Query()
	for query.Next() {
		out = append(out, query.Entity())
	}
	return out
}

// freeBears lists live bears that are not under parental care,
// excluding self. These are the eligible encounter partners.
func (m *Model) freeBears(self ecs.Entity) []ecs.Entity {
	return m.sched.Filter(components.KindBear, func(e ecs.Entity) bool {
		return e != self && !m.bearMapper.Get(e).UnderCare
	})
}

// liveBear resolves a non-owning bear handle. Returns nil when the
// referenced bear is gone; generational handles make this exact even
// if the slot was recycled.
func (m *Model) liveBear(e ecs.Entity) *components.Bear {
	if e == (ecs.Entity{}) || !m.world.Alive(e) {
		return nil
	}
	return m.bearMapper.Get(e)
}
