// Package schedule drives randomized per-breed agent activation.
//
// Births and deaths happen while a pass is running, so each breed is
// activated over a shuffled snapshot taken at the start of its pass:
// agents created mid-pass are not activated until the next tick, and
// agents removed mid-pass are skipped via the world's liveness check.
// The world's generational entity handles make the check exact even
// when an entity slot has been recycled.
package schedule

import (
	"fmt"
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/taiga/components"
)

// SnapshotFunc returns the entities of one breed live at call time.
type SnapshotFunc func() []ecs.Entity

// StepFunc activates a single agent.
type StepFunc func(ecs.Entity)

type breedEntry struct {
	kind     components.Kind
	snapshot SnapshotFunc
	step     StepFunc
}

// Scheduler owns the activation order of the live agent population.
// Agent creation and removal go through the world's component mappers;
// the scheduler observes membership through the registered snapshot
// functions, never through a cache.
type Scheduler struct {
	world  *ecs.World
	rng    *rand.Rand
	breeds []breedEntry
	tick   int
}

// New creates a scheduler over the given world and random source.
func New(world *ecs.World, rng *rand.Rand) *Scheduler {
	return &Scheduler{world: world, rng: rng}
}

// Register adds a breed to the activation cycle. Breeds are activated
// in registration order each tick. Registering a kind twice is a
// programming error.
func (s *Scheduler) Register(kind components.Kind, snapshot SnapshotFunc, step StepFunc) {
	for _, b := range s.breeds {
		if b.kind == kind {
			panic(fmt.Sprintf("schedule: kind %v registered twice", kind))
		}
	}
	s.breeds = append(s.breeds, breedEntry{kind: kind, snapshot: snapshot, step: step})
}

// Step runs one tick: every breed in registration order, its members in
// a fresh shuffled order. Each live agent is activated exactly once;
// agents killed earlier in the tick never act.
func (s *Scheduler) Step() {
	for _, b := range s.breeds {
		agents := b.snapshot()
		s.rng.Shuffle(len(agents), func(i, j int) {
			agents[i], agents[j] = agents[j], agents[i]
		})
		for _, e := range agents {
			if !s.world.Alive(e) {
				continue
			}
			b.step(e)
		}
	}
	s.tick++
}

// Tick returns the number of completed passes.
func (s *Scheduler) Tick() int {
	return s.tick
}

// Count returns the current live count of a breed.
func (s *Scheduler) Count(kind components.Kind) int {
	return len(s.entry(kind).snapshot())
}

// Filter returns the live members of a breed satisfying pred.
func (s *Scheduler) Filter(kind components.Kind, pred func(ecs.Entity) bool) []ecs.Entity {
	var out []ecs.Entity
	for _, e := range s.entry(kind).snapshot() {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

func (s *Scheduler) entry(kind components.Kind) *breedEntry {
	for i := range s.breeds {
		if s.breeds[i].kind == kind {
			return &s.breeds[i]
		}
	}
	panic(fmt.Sprintf("schedule: kind %v not registered", kind))
}
