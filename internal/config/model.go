package config

import "fmt"

// Model is the unified representation of every loaded input file.
type Model struct {
	Measurements []*Measurement
}

// Measurement is one named pair of raw inputs.
type Measurement struct {
	Name   string
	Height string
	Weight string
	// Source is the file the measurement was read from.
	Source string
}

// Add appends m, rejecting a name that is already present.
func (mdl *Model) Add(m *Measurement) error {
	for _, existing := range mdl.Measurements {
		if existing.Name == m.Name {
			return fmt.Errorf("duplicate measurement %q at %s (first defined at %s)", m.Name, m.Source, existing.Source)
		}
	}
	mdl.Measurements = append(mdl.Measurements, m)
	return nil
}
