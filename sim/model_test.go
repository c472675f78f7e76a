package sim

import (
	"testing"

	"github.com/pthm-cable/taiga/components"
	"github.com/pthm-cable/taiga/config"
	"github.com/pthm-cable/taiga/traits"
)

// newTestModel builds a model from embedded defaults with an empty
// starting population, letting each test spawn exactly the agents it
// needs. mutate may adjust the config before the model is built.
func newTestModel(t *testing.T, seed uint64, mutate func(*config.Config)) *Model {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	cfg.Population.Sheep = 0
	cfg.Population.Cowards = 0
	cfg.Population.Aggressive = 0
	if mutate != nil {
		mutate(cfg)
	}
	return New(cfg, seed)
}

func TestSeasonCycle(t *testing.T) {
	m := newTestModel(t, 1, func(cfg *config.Config) {
		cfg.Season.MatingFrequency = 4
	})

	want := []Season{SeasonMating, SeasonNormal, SeasonNormal, SeasonNormal, SeasonMating, SeasonNormal}
	for i, w := range want {
		m.Step()
		if m.Season() != w {
			t.Errorf("tick %d ran in season %v, want %v", i, m.Season(), w)
		}
	}
}

func TestSheepReproductionRespectsLimit(t *testing.T) {
	m := newTestModel(t, 7, func(cfg *config.Config) {
		cfg.Population.Sheep = 10
		cfg.Reproduction.SheepChance = 1.0
		cfg.Reproduction.SheepLimit = 12
	})

	m.Step()
	if got := m.Count(components.KindSheep); got != 12 {
		t.Errorf("sheep after tick = %d, want 12 (limit)", got)
	}

	// At the cap, guaranteed reproduction rolls must not push past it.
	for i := 0; i < 5; i++ {
		m.Step()
	}
	if got := m.Count(components.KindSheep); got != 12 {
		t.Errorf("sheep after further ticks = %d, want 12", got)
	}
}

func TestEnergyDeathSameTick(t *testing.T) {
	m := newTestModel(t, 3, nil)
	m.SpawnBear(traits.Coward, 0)

	m.Step()
	if got := m.Count(components.KindBear); got != 0 {
		t.Errorf("bear with 0 energy survived its tick, count = %d", got)
	}
}

func TestDeadAgentsAbsentFromQueries(t *testing.T) {
	m := newTestModel(t, 5, nil)
	kept := m.SpawnBear(traits.Coward, 100)
	doomed := m.SpawnBear(traits.Aggressive, 100)

	m.killBear(doomed)

	if got := m.Count(components.KindBear); got != 1 {
		t.Fatalf("bear count after death = %d, want 1", got)
	}
	free := m.freeBears(kept)
	if len(free) != 0 {
		t.Errorf("dead bear still offered as encounter partner: %v", free)
	}
	if m.liveBear(doomed) != nil {
		t.Error("liveBear resolved a dead handle")
	}
}

func TestStationaryWithoutReproductionAndPrey(t *testing.T) {
	const initial = 20
	m := newTestModel(t, 11, func(cfg *config.Config) {
		cfg.Population.Cowards = initial
		cfg.Reproduction.SheepChance = 0
		cfg.Reproduction.BearChance = 0
	})

	for i := 0; i < 5; i++ {
		m.Step()
	}

	rec := m.Collector().Flush(m.Snapshot())
	if rec.Sheep != 0 {
		t.Errorf("sheep appeared from nowhere: %d", rec.Sheep)
	}
	if rec.BearBirths != 0 {
		t.Errorf("bear births with reproduction disabled: %d", rec.BearBirths)
	}
	if rec.Combats != 0 {
		t.Errorf("combats among cowards: %d", rec.Combats)
	}
	if got := initial - rec.Starvations; rec.Bears != got {
		t.Errorf("bears = %d, want initial %d minus %d starvations = %d",
			rec.Bears, initial, rec.Starvations, got)
	}
}

func TestSnapshotAverages(t *testing.T) {
	m := newTestModel(t, 13, nil)
	a := m.SpawnBear(traits.Coward, 50)
	b := m.SpawnBear(traits.Coward, 50)
	m.bearMapper.Get(a).Level = 3
	m.bearMapper.Get(b).Level = 5

	pop := m.Snapshot()
	if pop.Cowards != 2 || pop.Aggressive != 0 {
		t.Fatalf("counts = %d cowards, %d aggressive", pop.Cowards, pop.Aggressive)
	}
	if pop.AvgCowardLevel != 4 {
		t.Errorf("avg coward level = %v, want 4", pop.AvgCowardLevel)
	}
	if pop.AvgAggressiveLevel != 0 {
		t.Errorf("avg aggressive level with no members = %v, want 0", pop.AvgAggressiveLevel)
	}
}
