package sim

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/taiga/traits"
)

// generateEncounters draws a Poisson number of encounters for a free
// bear and resolves each one: mating when the season and sexes allow
// it, combat when the acting bear is aggressive, otherwise nothing.
// Finding no eligible partner is a silent no-op, but calling this for
// a cub under parental care is a programming error.
func (m *Model) generateEncounters(e ecs.Entity) {
	self := m.bearMapper.Get(e)
	if self.UnderCare {
		panic("sim: encounter generation for a bear under parental care")
	}

	// Cowards don't initiate encounters outside of the mating season.
	if self.Behavior == traits.Coward && m.season != SeasonMating {
		return
	}

	encounters := int(distuv.Poisson{Lambda: m.cfg.Encounters.Rate, Src: m.rng}.Rand())
	for i := 0; i < encounters; i++ {
		if !m.world.Alive(e) {
			// Killed in an earlier encounter this tick.
			return
		}
		self = m.bearMapper.Get(e)

		partners := m.freeBears(e)
		if len(partners) == 0 {
			continue
		}
		otherEnt := partners[m.rng.IntN(len(partners))]
		other := m.bearMapper.Get(otherEnt)

		switch {
		case m.season == SeasonMating && other.Female != self.Female:
			maleEnt, femaleEnt := e, otherEnt
			if self.Female {
				maleEnt, femaleEnt = otherEnt, e
			}
			if m.attemptToMate(maleEnt, femaleEnt) {
				m.giveBirth(femaleEnt, maleEnt)
			}
		case self.Behavior == traits.Aggressive:
			m.fight(e, otherEnt)
		}
	}
}
