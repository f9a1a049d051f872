package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a scenario from a YAML file and applies defaults for omitted
// fields.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scenario from YAML.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	s.applyDefaults()
	return &s, nil
}

// WriteFile marshals the scenario to YAML on disk.
func (s *Scenario) WriteFile(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scenario: %w", err)
	}
	return nil
}

func (s *Scenario) applyDefaults() {
	if s.Name == "" {
		s.Name = "Unnamed scenario"
	}
	if s.Trials == 0 {
		s.Trials = DefaultTrials
	}
	if s.Mode == "" {
		s.Mode = ModeSimple
	}
	// Assign stable ids to farm types authored without one.
	next := 0
	for _, ft := range s.FarmTypes {
		if ft.ID > next {
			next = ft.ID
		}
	}
	for i := range s.FarmTypes {
		if s.FarmTypes[i].ID == 0 {
			next++
			s.FarmTypes[i].ID = next
		}
	}
	if s.Mixture != nil {
		if s.Mixture.FullPriceDistribution == "" {
			s.Mixture.FullPriceDistribution = FullPriceFixed
		}
		if s.Mixture.FullPriceDistribution == FullPriceFixed && s.Mixture.FullPriceValue == 0 {
			s.Mixture.FullPriceValue = 1.0
		}
		if s.Mixture.DiscountDistribution == "" {
			s.Mixture.DiscountDistribution = DiscountUniform
		}
	}
}
