package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/growth-projector/internal"
)

type Params struct {
	Initial         string `descr:"Initial lump sum (1,000 or 1 000 group thousands; 1,5 is a decimal comma)" optional:"true"`
	Monthly         string `descr:"Monthly contribution (same number format as --initial)" optional:"true"`
	Rate            string `descr:"Annual interest rate in percent" optional:"true"`
	Years           string `descr:"Horizon in whole years (1-1200)" optional:"true"`
	Scenarios       string `descr:"Scenario file (.json, .yaml or .xlsx); prefix with format: to override detection" optional:"true"`
	CompareDoubling bool   `descr:"Add the 100/month for 40 years vs 200/month for 20 years comparison" optional:"true"`
	Output          string `descr:"Output format" alts:"table,json" strict:"true" default:"table"`
	Xlsx            string `descr:"Also write the projections to this Excel file" optional:"true"`
	Currency        string `descr:"Currency code (default: config, then system locale, then USD)" optional:"true"`
	Every           int    `descr:"Show only every Nth year in tables (0 = config or all)" default:"0"`
	Config          string `descr:"Path to config file (default: ~/.growth-projector/config.yaml)" optional:"true"`
	InitConfig      bool   `descr:"Write the resulting scenarios to the config file and exit" optional:"true"`
}

func main() {
	boa.NewCmdT[Params]("growth-projector").
		WithShort("Project savings growth with monthly compounding").
		WithLong("Projects an initial amount plus monthly contributions year by year, comparing monthly compounding with simple interest. Several scenarios can be compared side by side.").
		WithRunFunc(func(params *Params) {
			if err := run(params); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}).
		Run()
}

func run(params *Params) error {
	cfg, cfgPath, err := loadConfig(params.Config, params.InitConfig)
	if err != nil {
		return err
	}

	scenarios, err := collectScenarios(params, cfg)
	if err != nil {
		return err
	}

	if params.InitConfig {
		template := internal.GenerateConfigTemplate(scenarios)
		template.Currency = cfg.Currency
		template.Defaults = cfg.Defaults
		template.Every = cfg.Every
		template.Exclude = cfg.Exclude
		if err := template.Save(cfgPath); err != nil {
			return err
		}
		fmt.Printf("Wrote %d scenario(s) to %s\n", len(scenarios), cfgPath)
		return nil
	}

	scenarios = cfg.FilterScenarios(scenarios)
	if len(scenarios) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: all scenarios were excluded by the config.")
	}

	results := internal.RunScenarios(scenarios)
	currency := internal.ResolveCurrency(params.Currency, cfg)

	if params.Xlsx != "" {
		if err := internal.ExportXLSX(params.Xlsx, results); err != nil {
			return fmt.Errorf("exporting %s: %w", params.Xlsx, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", params.Xlsx)
	}

	if params.Output == "json" {
		return internal.PrintJSON(os.Stdout, results, currency)
	}

	every := params.Every
	if every == 0 {
		every = cfg.Every
	}
	opts := internal.OutputOptions{Every: every, Currency: currency}

	if len(results) > 1 {
		internal.PrintComparisonTable(os.Stdout, results, opts)
		fmt.Println()
	}
	for i, r := range results {
		if i > 0 {
			fmt.Println()
		}
		internal.PrintProjectionTable(os.Stdout, r, opts)
	}
	return nil
}

// loadConfig reads the config file. A missing file is not an error at the
// default location, or when the file is about to be created.
func loadConfig(path string, allowMissing bool) (*internal.Config, string, error) {
	explicit := path != ""
	if !explicit {
		path = internal.DefaultConfigPath()
	}
	if path == "" {
		return internal.NewDefaultConfig(), "", nil
	}

	cfg, err := internal.LoadConfig(path)
	if err != nil {
		if (!explicit || allowMissing) && errors.Is(err, fs.ErrNotExist) {
			return internal.NewDefaultConfig(), path, nil
		}
		return nil, path, err
	}
	return cfg, path, nil
}

// collectScenarios assembles the flag-defined projection, config scenarios,
// scenario file entries and the doubling comparison, in that order.
func collectScenarios(params *Params, cfg *internal.Config) ([]internal.Scenario, error) {
	fields := internal.DefaultFields()
	set := map[string]bool{}
	flagValues := map[string]string{
		internal.FieldInitial: params.Initial,
		internal.FieldMonthly: params.Monthly,
		internal.FieldRate:    params.Rate,
		internal.FieldYears:   params.Years,
	}
	for i := range fields {
		if v := flagValues[fields[i].Key]; v != "" {
			fields[i].Value = v
			set[fields[i].Key] = true
		}
	}
	flagParams := cfg.ApplyDefaults(internal.ParametersFromFields(fields), set)

	var scenarios []internal.Scenario
	configScenarios := cfg.ConfigScenarios()
	onlyDefaults := len(set) == 0 && params.Scenarios == "" && !params.CompareDoubling && len(configScenarios) == 0
	if len(set) > 0 || onlyDefaults {
		scenarios = append(scenarios, internal.Scenario{Name: "Projection", Parameters: flagParams})
	}

	scenarios = append(scenarios, configScenarios...)

	if params.Scenarios != "" {
		loaded, err := internal.LoadScenarios(params.Scenarios)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, loaded...)
	}

	if params.CompareDoubling {
		scenarios = append(scenarios, internal.DoublingComparison(flagParams.RatePercent)...)
	}

	return scenarios, nil
}
