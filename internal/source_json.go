package internal

import (
	"encoding/json"
	"fmt"
	"os"
)

// SimpleJSONFormat is a minimal JSON format for scenario files
// Example:
//
//	{
//	  "scenarios": [
//	    {"name": "Long", "monthly": 100, "rate": 7, "years": 40},
//	    {"name": "Short", "monthly": 200, "rate": 7, "years": 20}
//	  ]
//	}
type SimpleJSONFormat struct {
	Scenarios []ScenarioEntry `json:"scenarios"`
}

// LoadSimpleJSON reads scenarios from a file in the simple JSON format
func LoadSimpleJSON(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var doc SimpleJSONFormat
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	scenarios := make([]Scenario, 0, len(doc.Scenarios))
	for _, e := range doc.Scenarios {
		scenarios = append(scenarios, e.Scenario())
	}
	return scenarios, nil
}

func init() {
	RegisterSource("simple-json", SourceFunc(LoadSimpleJSON), ".json")
}
