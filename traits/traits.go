// Package traits defines bear behavioral strategies.
package traits

import "fmt"

// Behavior is a bear's strategy tag, fixed at creation for life.
type Behavior uint8

const (
	// Coward bears hide: they initiate encounters only during the
	// mating season and never attack.
	Coward Behavior = iota
	// Aggressive bears attack any non-mate encounter partner.
	Aggressive
)

// Behaviors lists every behavior, in a stable order.
var Behaviors = []Behavior{Coward, Aggressive}

// String returns the config/reporting name of the behavior.
func (b Behavior) String() string {
	switch b {
	case Coward:
		return "coward"
	case Aggressive:
		return "aggressive"
	default:
		return fmt.Sprintf("Behavior(%d)", uint8(b))
	}
}

// ParseBehavior converts a config key into a Behavior.
func ParseBehavior(s string) (Behavior, error) {
	switch s {
	case "coward":
		return Coward, nil
	case "aggressive":
		return Aggressive, nil
	}
	return 0, fmt.Errorf("unknown behavior %q", s)
}
