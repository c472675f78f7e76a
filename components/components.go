// Package components defines the per-agent state stored in the ECS world.
package components

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/taiga/traits"
)

// Kind identifies an agent breed.
type Kind uint8

const (
	KindSheep Kind = iota
	KindBear
)

// String returns the reporting name of the kind.
func (k Kind) String() string {
	if k == KindSheep {
		return "sheep"
	}
	return "bear"
}

// Sheep is prey. It reproduces asexually and gets eaten; no energy is
// modeled for it.
type Sheep struct {
	ID uint32
}

// Bear is a predator with an RPG progression layer. Energy drains by
// one per tick and a bear dies the tick its energy is observed
// negative. Level is derived from XP and never decreases.
type Bear struct {
	ID       uint32
	Energy   int
	Behavior traits.Behavior
	Female   bool

	Level int
	XP    float64

	// Parental care bond. UnderCare marks a cub protected by its
	// mother; Caring marks a mother with a live litter. Mother is a
	// non-owning handle: it may refer to a bear that has since died.
	UnderCare     bool
	Caring        bool
	CareCountdown int
	Mother        ecs.Entity
	Cubs          []ecs.Entity

	// Litter-size and care-duration ranges, [lower, upper) with the
	// upper bound exclusive. Founders take behavior-keyed defaults;
	// cubs inherit the floored average of both parents' values.
	LowerCubLimit  int
	UpperCubLimit  int
	LowerCareLimit int
	UpperCareLimit int
}

// Update recomputes the level staircase from accumulated XP. Level n+1
// is reached once XP exceeds e^(n+1), so the staircase is monotone and
// a level is never lost.
func (b *Bear) Update() {
	for b.XP > math.Exp(float64(b.Level+1)) {
		b.Level++
	}
}
