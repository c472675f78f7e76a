package sim

import (
	"github.com/pthm-cable/taiga/components"
	"github.com/pthm-cable/taiga/telemetry"
	"github.com/pthm-cable/taiga/traits"
)

// Snapshot reports the current population for the telemetry
// collaborator: totals, per-behavior counts and average levels, and
// cubs under parental care. Averages are 0 for an extinct behavior.
func (m *Model) Snapshot() telemetry.Population {
	pop := telemetry.Population{
		Tick:  m.sched.Tick(),
		Sheep: m.Count(components.KindSheep),
	}

	var cowardLevels, aggressiveLevels int
	query := m.bearFilter.Query()
	for query.Next() {
		bear := query.Get()
		pop.Bears++
		if bear.UnderCare {
			pop.Cubs++
		}
		if bear.Behavior == traits.Coward {
			pop.Cowards++
			cowardLevels += bear.Level
		} else {
			pop.Aggressive++
			aggressiveLevels += bear.Level
		}
	}

	if pop.Cowards > 0 {
		pop.AvgCowardLevel = float64(cowardLevels) / float64(pop.Cowards)
	}
	if pop.Aggressive > 0 {
		pop.AvgAggressiveLevel = float64(aggressiveLevels) / float64(pop.Aggressive)
	}
	return pop
}
