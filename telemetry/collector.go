// Package telemetry collects population time series and event counts
// from simulation runs and writes them as CSV.
package telemetry

// Population is a read-only view of the agent population after a tick,
// reported by the model. Averages are 0 when no member of the behavior
// is alive.
type Population struct {
	Tick               int
	Sheep              int
	Bears              int
	Cowards            int
	Aggressive         int
	AvgCowardLevel     float64
	AvgAggressiveLevel float64
	Cubs               int
}

// Collector accumulates interaction events between flushes. All Record
// methods are safe on a nil collector so the model can call them
// unconditionally.
type Collector struct {
	sheepBirths    int
	bearBirths     int
	huntAttempts   int
	huntKills      int
	matingAttempts int
	matings        int
	combats        int
	starvations    int
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// RecordSheepBirth records one asexual sheep reproduction.
func (c *Collector) RecordSheepBirth() {
	if c == nil {
		return
	}
	c.sheepBirths++
}

// RecordBearBirths records a delivered litter of the given size.
func (c *Collector) RecordBearBirths(litter int) {
	if c == nil {
		return
	}
	c.bearBirths += litter
}

// RecordHuntAttempt records one hunt attempt.
func (c *Collector) RecordHuntAttempt() {
	if c == nil {
		return
	}
	c.huntAttempts++
}

// RecordHuntKill records a successful hunt.
func (c *Collector) RecordHuntKill() {
	if c == nil {
		return
	}
	c.huntKills++
}

// RecordMatingAttempt records one mating attempt.
func (c *Collector) RecordMatingAttempt() {
	if c == nil {
		return
	}
	c.matingAttempts++
}

// RecordMating records a successful mating.
func (c *Collector) RecordMating() {
	if c == nil {
		return
	}
	c.matings++
}

// RecordCombat records a resolved combat. Every combat kills exactly
// one bear.
func (c *Collector) RecordCombat() {
	if c == nil {
		return
	}
	c.combats++
}

// RecordStarvation records an energy death.
func (c *Collector) RecordStarvation() {
	if c == nil {
		return
	}
	c.starvations++
}

// Flush combines the given population view with the events accumulated
// since the previous flush and resets the counters.
func (c *Collector) Flush(pop Population) Record {
	rec := Record{
		Tick:               pop.Tick,
		Sheep:              pop.Sheep,
		Bears:              pop.Bears,
		Cowards:            pop.Cowards,
		Aggressive:         pop.Aggressive,
		AvgCowardLevel:     pop.AvgCowardLevel,
		AvgAggressiveLevel: pop.AvgAggressiveLevel,
		Cubs:               pop.Cubs,
	}
	if c == nil {
		return rec
	}

	rec.SheepBirths = c.sheepBirths
	rec.BearBirths = c.bearBirths
	rec.HuntAttempts = c.huntAttempts
	rec.HuntKills = c.huntKills
	rec.MatingAttempts = c.matingAttempts
	rec.Matings = c.matings
	rec.Combats = c.combats
	rec.Starvations = c.starvations

	*c = Collector{}
	return rec
}
