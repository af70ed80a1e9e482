package internal

// Parameters are the four scalar inputs of a projection
type Parameters struct {
	Initial     float64 `json:"initial" yaml:"initial"`
	Monthly     float64 `json:"monthly" yaml:"monthly"`
	RatePercent float64 `json:"rate" yaml:"rate"`
	Years       int     `json:"years" yaml:"years"`
}

// YearlySnapshot is the state of a projection at the end of one year.
// Money fields always hold whole currency units.
type YearlySnapshot struct {
	Year               int     `json:"year"`
	Balance            float64 `json:"balance"`
	TotalContributions float64 `json:"total_contributions"`
	InterestEarned     float64 `json:"interest_earned"`
	SimpleBalance      float64 `json:"simple_balance"`
}

// Summary holds the metrics derived from the final snapshot of a projection
type Summary struct {
	Final              YearlySnapshot `json:"final"`
	InterestMultiplier float64        `json:"interest_multiplier"`
	// EffectiveAnnualRate is an approximation (final balance over total
	// contributions), not an IRR.
	EffectiveAnnualRate float64 `json:"effective_annual_rate_approx"`
}

// InputField is one labelled entry of an input form. Fields may come in any order.
type InputField struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Scenario is a named set of parameters
type Scenario struct {
	Name       string
	Parameters Parameters
}

// ScenarioResult is a scenario together with its computed projection
type ScenarioResult struct {
	Scenario  Scenario
	Snapshots []YearlySnapshot
	Summary   Summary
}
