package schedule

import (
	"math/rand/v2"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/taiga/components"
)

// testHerd wraps a world with a single sheep breed for scheduler tests.
type testHerd struct {
	world  *ecs.World
	mapper *ecs.Map1[components.Sheep]
	filter *ecs.Filter1[components.Sheep]
}

func newTestHerd() *testHerd {
	world := ecs.NewWorld()
	return &testHerd{
		world:  world,
		mapper: ecs.NewMap1[components.Sheep](world),
		filter: ecs.NewFilter1[components.Sheep](world),
	}
}

func (h *testHerd) snapshot() []ecs.Entity {
	var out []ecs.Entity
	query := h.filter.Query()
	for query.Next() {
		out = append(out, query.Entity())
	}
	return out
}

func (h *testHerd) spawn(n int) []ecs.Entity {
	out := make([]ecs.Entity, n)
	for i := range out {
		out[i] = h.mapper.NewEntity(&components.Sheep{ID: uint32(i + 1)})
	}
	return out
}

func newTestScheduler(h *testHerd, step StepFunc) *Scheduler {
	s := New(h.world, rand.New(rand.NewPCG(1, 2)))
	s.Register(components.KindSheep, h.snapshot, step)
	return s
}

func TestStepActivatesEachLiveAgentOnce(t *testing.T) {
	h := newTestHerd()
	h.spawn(10)

	activated := make(map[ecs.Entity]int)
	s := newTestScheduler(h, func(e ecs.Entity) {
		activated[e]++
	})

	s.Step()

	if len(activated) != 10 {
		t.Fatalf("expected 10 activated agents, got %d", len(activated))
	}
	for e, n := range activated {
		if n != 1 {
			t.Errorf("agent %v activated %d times", e, n)
		}
	}
}

func TestAgentsCreatedMidPassAreNotActivated(t *testing.T) {
	h := newTestHerd()
	h.spawn(5)

	acted := 0
	s := newTestScheduler(h, func(e ecs.Entity) {
		acted++
		h.mapper.NewEntity(&components.Sheep{ID: 100 + uint32(acted)})
	})

	s.Step()

	if acted != 5 {
		t.Errorf("expected 5 activations in creation tick, got %d", acted)
	}
	if got := s.Count(components.KindSheep); got != 10 {
		t.Errorf("expected 10 live agents after tick, got %d", got)
	}

	// The newcomers act on the following tick.
	acted = 0
	s.Step()
	if acted != 10 {
		t.Errorf("expected 10 activations on second tick, got %d", acted)
	}
}

func TestAgentsRemovedMidPassNeverAct(t *testing.T) {
	h := newTestHerd()
	h.spawn(8)

	acted := 0
	s := newTestScheduler(h, func(e ecs.Entity) {
		acted++
		if acted == 1 {
			// The first agent to act kills everyone else.
			for _, other := range h.snapshot() {
				if other != e {
					h.world.RemoveEntity(other)
				}
			}
		}
	})

	s.Step()

	if acted != 1 {
		t.Errorf("expected exactly 1 activation, got %d", acted)
	}
	if got := s.Count(components.KindSheep); got != 1 {
		t.Errorf("expected 1 survivor, got %d", got)
	}
}

func TestTickAdvancesOncePerStep(t *testing.T) {
	h := newTestHerd()
	h.spawn(3)
	s := newTestScheduler(h, func(ecs.Entity) {})

	if s.Tick() != 0 {
		t.Fatalf("fresh scheduler tick = %d, want 0", s.Tick())
	}
	for i := 1; i <= 4; i++ {
		s.Step()
		if s.Tick() != i {
			t.Errorf("after %d steps tick = %d", i, s.Tick())
		}
	}
}

func TestCountReflectsLiveSet(t *testing.T) {
	h := newTestHerd()
	agents := h.spawn(6)
	s := newTestScheduler(h, func(ecs.Entity) {})

	if got := s.Count(components.KindSheep); got != 6 {
		t.Fatalf("count = %d, want 6", got)
	}

	h.mapper.Remove(agents[0])
	h.mapper.Remove(agents[3])
	if got := s.Count(components.KindSheep); got != 4 {
		t.Errorf("count after removals = %d, want 4", got)
	}
}

func TestFilterSelectsByPredicate(t *testing.T) {
	h := newTestHerd()
	h.spawn(9)
	s := newTestScheduler(h, func(ecs.Entity) {})

	even := s.Filter(components.KindSheep, func(e ecs.Entity) bool {
		return h.mapper.Get(e).ID%2 == 0
	})
	if len(even) != 4 {
		t.Errorf("filter returned %d agents, want 4", len(even))
	}
	for _, e := range even {
		if h.mapper.Get(e).ID%2 != 0 {
			t.Errorf("filter returned non-matching agent %d", h.mapper.Get(e).ID)
		}
	}
}

func TestRegisterSameKindTwicePanics(t *testing.T) {
	h := newTestHerd()
	s := newTestScheduler(h, func(ecs.Entity) {})

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	s.Register(components.KindSheep, h.snapshot, func(ecs.Entity) {})
}
