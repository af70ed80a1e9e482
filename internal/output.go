package internal

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// OutputOptions controls how projections are displayed
type OutputOptions struct {
	Every    int
	Currency Currency
}

// JSONOutput is the root JSON output object
type JSONOutput struct {
	Scenarios []JSONScenario `json:"scenarios"`
	Best      string         `json:"best,omitempty"`
	Currency  string         `json:"currency"`
}

// JSONScenario is the JSON output format for one scenario
type JSONScenario struct {
	Name       string           `json:"name"`
	Parameters Parameters       `json:"parameters"`
	Snapshots  []YearlySnapshot `json:"snapshots"`
	Summary    Summary          `json:"summary"`
}

// PrintJSON outputs all results as one indented JSON document
func PrintJSON(w io.Writer, results []ScenarioResult, currency Currency) error {
	output := JSONOutput{
		Scenarios: make([]JSONScenario, 0, len(results)),
		Currency:  currency.Code,
	}
	for _, r := range results {
		snapshots := r.Snapshots
		if snapshots == nil {
			snapshots = []YearlySnapshot{}
		}
		output.Scenarios = append(output.Scenarios, JSONScenario{
			Name:       r.Scenario.Name,
			Parameters: r.Scenario.Parameters,
			Snapshots:  snapshots,
			Summary:    r.Summary,
		})
	}
	if len(results) > 1 {
		if best, ok := BestScenario(results); ok {
			output.Best = best.Scenario.Name
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// VisibleSnapshots applies the every-Nth-year stride. The final year is always kept.
func VisibleSnapshots(snapshots []YearlySnapshot, every int) []YearlySnapshot {
	if every <= 1 || len(snapshots) == 0 {
		return snapshots
	}
	var result []YearlySnapshot
	for i, s := range snapshots {
		if s.Year%every == 0 || i == len(snapshots)-1 {
			result = append(result, s)
		}
	}
	return result
}

// PrintProjectionTable outputs the yearly snapshots of one scenario followed by its summary
func PrintProjectionTable(w io.Writer, r ScenarioResult, opts OutputOptions) {
	p := r.Scenario.Parameters
	c := opts.Currency

	fmt.Fprintf(w, "%s\n", text.Bold.Sprint(r.Scenario.Name))
	fmt.Fprintf(w, "Initial %s, %s/month at %s for %d years\n\n",
		c.Format(p.Initial), c.Format(p.Monthly), c.FormatPercent(p.RatePercent), p.Years)

	if len(r.Snapshots) == 0 {
		fmt.Fprintln(w, "No projection: years must be positive and amounts must not be negative.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Year", "Contributed", "Balance", "Interest", "Simple"})

	for _, s := range VisibleSnapshots(r.Snapshots, opts.Every) {
		t.AppendRow(table.Row{
			s.Year,
			c.Format(s.TotalContributions),
			c.Format(s.Balance),
			c.Format(s.InterestEarned),
			c.Format(s.SimpleBalance),
		})
	}

	final := r.Summary.Final
	t.AppendSeparator()
	t.AppendFooter(table.Row{
		text.Bold.Sprint("Final"),
		text.Bold.Sprint(c.Format(final.TotalContributions)),
		text.Bold.Sprint(c.Format(final.Balance)),
		text.Bold.Sprint(c.Format(final.InterestEarned)),
		text.Bold.Sprint(c.Format(final.SimpleBalance)),
	})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 4, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 5, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	t.Render()

	fmt.Fprintf(w, "Interest multiplier: %s\n", c.FormatMultiplier(r.Summary.InterestMultiplier))
	fmt.Fprintf(w, "Effective annual rate (approx.): %s\n", c.FormatPercent(r.Summary.EffectiveAnnualRate))
	fmt.Fprintf(w, "Compounding vs simple: %s\n", c.Format(final.Balance-final.SimpleBalance))
}

// PrintComparisonTable outputs one row per scenario with its final values.
// The scenario with the highest final balance is highlighted.
func PrintComparisonTable(w io.Writer, results []ScenarioResult, opts OutputOptions) {
	c := opts.Currency
	best := bestIndex(results)

	fmt.Fprintf(w, "Comparing %d scenarios\n\n", len(results))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Scenario", "Initial", "Monthly", "Rate", "Years", "Contributed", "Balance", "Interest", "Multiplier", "Eff. rate"})

	for i, r := range results {
		p := r.Scenario.Parameters
		s := r.Summary
		name := r.Scenario.Name
		balance := c.Format(s.Final.Balance)
		if len(r.Snapshots) == 0 {
			balance = text.FgHiBlack.Sprint("-")
		} else if i == best {
			name = text.FgGreen.Sprint(name)
			balance = text.FgGreen.Sprint(balance)
		}
		t.AppendRow(table.Row{
			name,
			c.Format(p.Initial),
			c.Format(p.Monthly),
			c.FormatPercent(p.RatePercent),
			p.Years,
			c.Format(s.Final.TotalContributions),
			balance,
			c.Format(s.Final.InterestEarned),
			c.FormatMultiplier(s.InterestMultiplier),
			c.FormatPercent(s.EffectiveAnnualRate),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault

	configs := make([]table.ColumnConfig, 0, 9)
	for col := 2; col <= 10; col++ {
		configs = append(configs, table.ColumnConfig{Number: col, Align: text.AlignRight})
	}
	t.SetColumnConfigs(configs)
	t.Render()
	fmt.Fprintln(w, "Effective rate is approximate: final balance over total contributed, not an IRR.")
}
