package sim

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/taiga/components"
)

// stepSheep is one sheep tick: asexual reproduction under the
// population cap. Nothing else happens to a sheep on its own turn.
func (m *Model) stepSheep(e ecs.Entity) {
	if m.rng.Float64() < m.cfg.Reproduction.SheepChance {
		if m.sched.Count(components.KindSheep) < m.cfg.Reproduction.SheepLimit {
			m.SpawnSheep()
			m.collector.RecordSheepBirth()
		}
	}
}

// killSheep removes a sheep from the live set. Removing a sheep twice
// is a programming error and panics in the world.
func (m *Model) killSheep(e ecs.Entity) {
	m.world.RemoveEntity(e)
}
