package sim

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mlange-42/ark/ecs"
)

// fight resolves combat between two bears. Each combatant draws from an
// exponential distribution whose rate is the opponent's level, and the
// smaller draw wins. Note the inversion: the opponent's strength
// parameterizes a bear's own draw. The winner takes a flat XP reward
// plus half the loser's accumulated XP; the loser dies on the spot.
func (m *Model) fight(attackerEnt, defenderEnt ecs.Entity) {
	attacker := m.bearMapper.Get(attackerEnt)
	defender := m.bearMapper.Get(defenderEnt)

	attackerDraw := distuv.Exponential{Rate: float64(defender.Level), Src: m.rng}.Rand()
	defenderDraw := distuv.Exponential{Rate: float64(attacker.Level), Src: m.rng}.Rand()

	winnerEnt, loserEnt := attackerEnt, defenderEnt
	if defenderDraw < attackerDraw {
		winnerEnt, loserEnt = defenderEnt, attackerEnt
	}

	loser := m.bearMapper.Get(loserEnt)
	gain := m.cfg.Combat.XPForBear + loser.XP/2

	// Removal moves component storage; settle the reward after.
	m.killBear(loserEnt)
	winner := m.bearMapper.Get(winnerEnt)
	winner.XP += gain
	winner.Update()

	m.collector.RecordCombat()
}
