package sim

import (
	"github.com/mlange-42/ark/ecs"
)

// attemptToMate resolves a mating attempt, oriented male to female.
// Females prefer higher-leveled mates: the base chance scales with the
// male's level, and is halved when the pair's behaviors differ. A
// female still caring for a litter never mates.
func (m *Model) attemptToMate(maleEnt, femaleEnt ecs.Entity) bool {
	male := m.bearMapper.Get(maleEnt)
	female := m.bearMapper.Get(femaleEnt)

	if female.Caring {
		return false
	}

	m.collector.RecordMatingAttempt()
	chance := m.cfg.Reproduction.BearChance * float64(male.Level)
	if male.Behavior != female.Behavior {
		chance /= 2
	}
	if m.rng.Float64() < chance {
		m.collector.RecordMating()
		return true
	}
	return false
}

// giveBirth delivers a litter and bonds the cubs to the mother. The
// litter size is drawn from the mother's limits; she spends half her
// energy, split evenly among the cubs, and cares for them for a
// duration drawn from her care limits.
func (m *Model) giveBirth(femaleEnt, maleEnt ecs.Entity) {
	mother := m.bearMapper.Get(femaleEnt)
	father := m.bearMapper.Get(maleEnt)

	litter := mother.LowerCubLimit + m.rng.IntN(mother.UpperCubLimit-mother.LowerCubLimit)
	countdown := mother.LowerCareLimit + m.rng.IntN(mother.UpperCareLimit-mother.LowerCareLimit)

	mother.Energy /= 2
	cubEnergy := mother.Energy / litter

	// Creating cubs moves component storage; inherit from copies and
	// re-acquire the mother once the litter exists.
	fatherCopy, motherCopy := *father, *mother
	cubs := make([]ecs.Entity, 0, litter)
	for i := 0; i < litter; i++ {
		cubs = append(cubs, m.spawnCub(&fatherCopy, &motherCopy, femaleEnt, cubEnergy))
	}

	mother = m.bearMapper.Get(femaleEnt)
	mother.Caring = true
	mother.CareCountdown = countdown
	mother.Cubs = cubs

	m.collector.RecordBearBirths(litter)
}
