package sim

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/taiga/components"
	"github.com/pthm-cable/taiga/traits"
)

// Starting energy is drawn uniformly from a multiple of gain_from_food.
// Cowards start with a much larger reserve than aggressive bears.
const (
	cowardStartEnergyFactor     = 10
	aggressiveStartEnergyFactor = 2
)

// spawnInitialPopulation creates the starting agents.
func (m *Model) spawnInitialPopulation() {
	cfg := m.cfg

	for i := 0; i < cfg.Population.Sheep; i++ {
		m.SpawnSheep()
	}

	maxEnergy := cowardStartEnergyFactor * cfg.Energy.GainFromFood
	for i := 0; i < cfg.Population.Cowards; i++ {
		m.SpawnBear(traits.Coward, m.rng.IntN(maxEnergy))
	}

	maxEnergy = aggressiveStartEnergyFactor * cfg.Energy.GainFromFood
	for i := 0; i < cfg.Population.Aggressive; i++ {
		m.SpawnBear(traits.Aggressive, m.rng.IntN(maxEnergy))
	}
}

// SpawnSheep registers a new sheep with the live set. It becomes
// eligible for activation on the next sheep pass.
func (m *Model) SpawnSheep() ecs.Entity {
	id := m.nextID
	m.nextID++
	return m.sheepMapper.NewEntity(&components.Sheep{ID: id})
}

// SpawnBear creates a founder bear at level 1 with behavior-keyed
// default litter and care limits. Sex is assigned uniformly at random.
func (m *Model) SpawnBear(behavior traits.Behavior, energy int) ecs.Entity {
	id := m.nextID
	m.nextID++

	d := m.cfg.Derived.Defaults[behavior]
	bear := components.Bear{
		ID:             id,
		Energy:         energy,
		Behavior:       behavior,
		Female:         m.rng.Float64() < 0.5,
		Level:          1,
		LowerCubLimit:  d.LowerCubLimit,
		UpperCubLimit:  d.UpperCubLimit,
		LowerCareLimit: d.LowerCareLimit,
		UpperCareLimit: d.UpperCareLimit,
	}
	return m.bearMapper.NewEntity(&bear)
}

// spawnCub creates one cub of a litter, bonded to its mother. The cub
// takes either parent's behavior with equal chance and inherits the
// floored average of both parents' limit parameters. father and mother
// are copies taken before any litter entity was created.
func (m *Model) spawnCub(father, mother *components.Bear, motherEnt ecs.Entity, energy int) ecs.Entity {
	id := m.nextID
	m.nextID++

	behavior := mother.Behavior
	if m.rng.Float64() < 0.5 {
		behavior = father.Behavior
	}

	cub := components.Bear{
		ID:             id,
		Energy:         energy,
		Behavior:       behavior,
		Female:         m.rng.Float64() < 0.5,
		Level:          1,
		UnderCare:      true,
		Mother:         motherEnt,
		LowerCubLimit:  (father.LowerCubLimit + mother.LowerCubLimit) / 2,
		UpperCubLimit:  (father.UpperCubLimit + mother.UpperCubLimit) / 2,
		LowerCareLimit: (father.LowerCareLimit + mother.LowerCareLimit) / 2,
		UpperCareLimit: (father.UpperCareLimit + mother.UpperCareLimit) / 2,
	}
	return m.bearMapper.NewEntity(&cub)
}
