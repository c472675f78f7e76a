package sim

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/taiga/components"
)

// stepBear is one bear tick, in fixed order: metabolize, hunt, tend
// cubs, roam for encounters, starve.
func (m *Model) stepBear(e ecs.Entity) {
	bear := m.bearMapper.Get(e)
	bear.Energy--

	// If there are sheep present, try to eat one. A cub under care
	// hunts with its mother assisting, as long as she is still alive.
	if prey := m.sheepSnapshot(); len(prey) > 0 {
		target := prey[m.rng.IntN(len(prey))]
		var assistant *components.Bear
		if bear.UnderCare {
			assistant = m.liveBear(bear.Mother)
		}
		m.hunt(bear, target, assistant)
	}

	if bear.Caring {
		if bear.CareCountdown <= 0 {
			m.releaseCubs(bear)
		} else {
			bear.CareCountdown--
		}
	}

	if !bear.UnderCare {
		m.generateEncounters(e)
		if !m.world.Alive(e) {
			// Lost a combat it started; a dead bear neither acts
			// further nor starves.
			return
		}
		// Births and deaths move component storage; re-acquire.
		bear = m.bearMapper.Get(e)
	}

	if bear.Energy < 0 {
		m.collector.RecordStarvation()
		m.killBear(e)
	}
}

// hunt resolves one hunt attempt against the given sheep. The success
// chance scales with the hunter's level, raised by half the assistant's
// level when a mother helps. Either way the level is recomputed
// afterwards so it reflects current XP.
func (m *Model) hunt(hunter *components.Bear, sheepEnt ecs.Entity, assistant *components.Bear) {
	level := hunter.Level
	if assistant != nil {
		level = hunter.Level + assistant.Level/2
	}

	m.collector.RecordHuntAttempt()
	if m.rng.Float64() < m.cfg.Hunting.SuccessChance*float64(level) {
		hunter.XP += m.cfg.Hunting.XPForSheep
		m.killSheep(sheepEnt)
		m.collector.RecordHuntKill()
	}
	hunter.Update()
}

// killBear removes a bear from the live set. A dying mother first
// releases every cub from parental care so none is left bonded to a
// dead bear.
func (m *Model) killBear(e ecs.Entity) {
	bear := m.bearMapper.Get(e)
	if bear.Caring {
		m.releaseCubs(bear)
	}
	m.world.RemoveEntity(e)
}

// releaseCubs ends parental care for the mother's whole litter,
// clearing both sides of the bond. Cubs that died during care are
// skipped.
func (m *Model) releaseCubs(mother *components.Bear) {
	for _, cubEnt := range mother.Cubs {
		if !m.world.Alive(cubEnt) {
			continue
		}
		m.bearMapper.Get(cubEnt).UnderCare = false
	}
	mother.Caring = false
	mother.Cubs = nil
}
