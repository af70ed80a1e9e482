package internal

import "testing"

func TestDoublingComparison(t *testing.T) {
	results := RunScenarios(DoublingComparison(7))
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	longer, bigger := results[0].Summary.Final, results[1].Summary.Final
	if longer.Balance != 264012 {
		t.Errorf("40 year balance = %v, want 264012", longer.Balance)
	}
	if bigger.Balance != 104793 {
		t.Errorf("20 year balance = %v, want 104793", bigger.Balance)
	}
	if longer.TotalContributions != bigger.TotalContributions {
		t.Errorf("expected equal contributions, got %v and %v", longer.TotalContributions, bigger.TotalContributions)
	}
	if longer.Balance <= bigger.Balance {
		t.Error("doubling the time should beat doubling the amount")
	}

	best, ok := BestScenario(results)
	if !ok || best.Scenario.Name != results[0].Scenario.Name {
		t.Errorf("expected %q to be best, got %q", results[0].Scenario.Name, best.Scenario.Name)
	}
}

func TestRunScenarios_PreservesOrder(t *testing.T) {
	scenarios := []Scenario{
		{Name: "c", Parameters: Parameters{Monthly: 10, RatePercent: 1, Years: 1}},
		{Name: "a", Parameters: Parameters{Monthly: 20, RatePercent: 1, Years: 1}},
		{Name: "b", Parameters: Parameters{Monthly: 30, RatePercent: 1, Years: 1}},
	}
	results := RunScenarios(scenarios)
	for i, r := range results {
		if r.Scenario.Name != scenarios[i].Name {
			t.Errorf("result %d = %q, want %q", i, r.Scenario.Name, scenarios[i].Name)
		}
	}
}

func TestBestScenario(t *testing.T) {
	tests := []struct {
		name      string
		scenarios []Scenario
		wantName  string
		wantOK    bool
	}{
		{
			name:      "empty",
			scenarios: nil,
			wantOK:    false,
		},
		{
			name: "all invalid",
			scenarios: []Scenario{
				{Name: "zero years", Parameters: Parameters{Monthly: 100}},
			},
			wantOK: false,
		},
		{
			name: "invalid scenario ignored",
			scenarios: []Scenario{
				{Name: "invalid", Parameters: Parameters{Monthly: -1, Years: 10}},
				{Name: "valid", Parameters: Parameters{Monthly: 1, Years: 1}},
			},
			wantName: "valid",
			wantOK:   true,
		},
		{
			name: "tie goes to first",
			scenarios: []Scenario{
				{Name: "first", Parameters: Parameters{Monthly: 100, RatePercent: 5, Years: 5}},
				{Name: "second", Parameters: Parameters{Monthly: 100, RatePercent: 5, Years: 5}},
			},
			wantName: "first",
			wantOK:   true,
		},
		{
			name: "higher rate wins",
			scenarios: []Scenario{
				{Name: "low", Parameters: Parameters{Monthly: 100, RatePercent: 2, Years: 10}},
				{Name: "high", Parameters: Parameters{Monthly: 100, RatePercent: 8, Years: 10}},
			},
			wantName: "high",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BestScenario(RunScenarios(tt.scenarios))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.Scenario.Name != tt.wantName {
				t.Errorf("best = %q, want %q", got.Scenario.Name, tt.wantName)
			}
		})
	}
}
