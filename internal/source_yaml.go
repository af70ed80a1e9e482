package internal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlScenarioFile accepts the same shape as the "scenarios" section of the config file
type yamlScenarioFile struct {
	Scenarios []ScenarioEntry `yaml:"scenarios"`
}

// LoadYAML reads scenarios from a YAML file
func LoadYAML(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var doc yamlScenarioFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	scenarios := make([]Scenario, 0, len(doc.Scenarios))
	for _, e := range doc.Scenarios {
		scenarios = append(scenarios, e.Scenario())
	}
	return scenarios, nil
}

func init() {
	RegisterSource("yaml", SourceFunc(LoadYAML), ".yaml", ".yml")
}
