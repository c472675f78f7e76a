package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/taiga/config"
)

// Record is one telemetry.csv row: the population series plus the
// events accumulated since the previous row.
type Record struct {
	Tick               int     `csv:"tick"`
	Sheep              int     `csv:"sheep"`
	Bears              int     `csv:"bears"`
	Cowards            int     `csv:"coward_bears"`
	Aggressive         int     `csv:"aggressive_bears"`
	AvgCowardLevel     float64 `csv:"avg_coward_level"`
	AvgAggressiveLevel float64 `csv:"avg_aggressive_level"`
	Cubs               int     `csv:"cubs"`
	SheepBirths        int     `csv:"sheep_births"`
	BearBirths         int     `csv:"bear_births"`
	HuntAttempts       int     `csv:"hunt_attempts"`
	HuntKills          int     `csv:"hunt_kills"`
	MatingAttempts     int     `csv:"mating_attempts"`
	Matings            int     `csv:"matings"`
	Combats            int     `csv:"combats"`
	Starvations        int     `csv:"starvations"`
}

// OutputManager handles structured run output with CSV logging. A nil
// manager discards everything, so output stays optional at call sites.
type OutputManager struct {
	dir           string
	telemetryFile *os.File

	telemetryHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	telemetryPath := filepath.Join(dir, "telemetry.csv")
	f, err := os.Create(telemetryPath)
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}
	om.telemetryFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteTelemetry writes a record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(rec Record) error {
	if om == nil {
		return nil
	}

	records := []Record{rec}

	if !om.telemetryHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.telemetryFile); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		om.telemetryHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.telemetryFile); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	if om.telemetryFile != nil {
		return om.telemetryFile.Close()
	}
	return nil
}
