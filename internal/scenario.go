package internal

import "fmt"

// RunScenario computes the projection and summary for a single scenario
func RunScenario(s Scenario) ScenarioResult {
	snapshots := s.Parameters.Project()
	return ScenarioResult{
		Scenario:  s,
		Snapshots: snapshots,
		Summary:   Summarize(snapshots),
	}
}

// RunScenarios computes all scenarios, preserving input order
func RunScenarios(scenarios []Scenario) []ScenarioResult {
	results := make([]ScenarioResult, 0, len(scenarios))
	for _, s := range scenarios {
		results = append(results, RunScenario(s))
	}
	return results
}

// BestScenario returns the result with the highest final balance.
// Ties go to the earlier scenario. Returns false if no scenario produced any snapshots.
func BestScenario(results []ScenarioResult) (ScenarioResult, bool) {
	idx := bestIndex(results)
	if idx == -1 {
		return ScenarioResult{}, false
	}
	return results[idx], true
}

func bestIndex(results []ScenarioResult) int {
	best := -1
	for i, r := range results {
		if len(r.Snapshots) == 0 {
			continue
		}
		if best == -1 || r.Summary.Final.Balance > results[best].Summary.Final.Balance {
			best = i
		}
	}
	return best
}

// DoublingComparison returns the "double the time vs double the amount" example:
// 100/month over 40 years against 200/month over 20 years. Both contribute the
// same total, but the longer horizon ends far ahead.
func DoublingComparison(ratePercent float64) []Scenario {
	return []Scenario{
		{
			Name:       fmt.Sprintf("100/month for 40 years at %g%%", ratePercent),
			Parameters: Parameters{Monthly: 100, RatePercent: ratePercent, Years: 40},
		},
		{
			Name:       fmt.Sprintf("200/month for 20 years at %g%%", ratePercent),
			Parameters: Parameters{Monthly: 200, RatePercent: ratePercent, Years: 20},
		},
	}
}
