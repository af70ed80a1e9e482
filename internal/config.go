package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Defaults holds fallback parameters used when a CLI flag is not given.
// Nil means "not set" so a configured 0 can be told apart from a missing value.
type Defaults struct {
	Initial *float64 `yaml:"initial,omitempty"`
	Monthly *float64 `yaml:"monthly,omitempty"`
	Rate    *float64 `yaml:"rate,omitempty"`
	Years   *int     `yaml:"years,omitempty"`
}

// ScenarioEntry is the config/file representation of a scenario
type ScenarioEntry struct {
	Name    string  `yaml:"name" json:"name"`
	Initial float64 `yaml:"initial,omitempty" json:"initial"`
	Monthly float64 `yaml:"monthly,omitempty" json:"monthly"`
	Rate    float64 `yaml:"rate,omitempty" json:"rate"`
	Years   int     `yaml:"years" json:"years"`
}

// Scenario converts the entry into a Scenario
func (e ScenarioEntry) Scenario() Scenario {
	return Scenario{
		Name: e.Name,
		Parameters: Parameters{
			Initial:     e.Initial,
			Monthly:     e.Monthly,
			RatePercent: e.Rate,
			Years:       e.Years,
		},
	}
}

type Config struct {
	// Currency is an ISO 4217 code. Empty means detect from the system locale.
	Currency string `yaml:"currency,omitempty"`

	// Defaults fill in parameters not given on the command line
	Defaults Defaults `yaml:"defaults,omitempty"`

	// Scenarios are always included in the comparison
	Scenarios []ScenarioEntry `yaml:"scenarios,omitempty"`

	// Every shows only every Nth year in tables (the last year is always shown)
	Every int `yaml:"every,omitempty"`

	// Exclude is a list of regex patterns - matching scenarios are dropped
	Exclude []string `yaml:"exclude,omitempty"`

	// compiled regex patterns (not serialized)
	excludePatterns []*regexp.Regexp `yaml:"-"`
}

// DefaultConfigPath returns the default config file path (~/.growth-projector/config.yaml)
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".growth-projector", "config.yaml")
}

// NewDefaultConfig creates an empty config. Use this when no config file exists.
func NewDefaultConfig() *Config {
	return &Config{}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Compile exclude patterns
	for _, pattern := range cfg.Exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		cfg.excludePatterns = append(cfg.excludePatterns, re)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	d := c.Defaults
	for name, v := range map[string]*float64{"initial": d.Initial, "monthly": d.Monthly, "rate": d.Rate} {
		if v != nil && *v < 0 {
			return fmt.Errorf("invalid default %s %v: must not be negative", name, *v)
		}
	}
	if d.Years != nil && (*d.Years <= 0 || *d.Years > MaxYears) {
		return fmt.Errorf("invalid default years %d: must be between 1 and %d", *d.Years, MaxYears)
	}
	if c.Every < 0 {
		return fmt.Errorf("invalid every %d: must not be negative", c.Every)
	}
	return nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ShouldExclude returns true if the scenario name matches any exclude pattern
func (c *Config) ShouldExclude(name string) bool {
	if c == nil {
		return false
	}
	for _, re := range c.excludePatterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// FilterScenarios removes scenarios matching exclusion patterns
func (c *Config) FilterScenarios(scenarios []Scenario) []Scenario {
	if c == nil || len(c.excludePatterns) == 0 {
		return scenarios
	}
	var result []Scenario
	for _, s := range scenarios {
		if !c.ShouldExclude(s.Name) {
			result = append(result, s)
		}
	}
	return result
}

// ConfigScenarios returns the scenarios defined in the config file
func (c *Config) ConfigScenarios() []Scenario {
	if c == nil {
		return nil
	}
	scenarios := make([]Scenario, 0, len(c.Scenarios))
	for i, e := range c.Scenarios {
		s := e.Scenario()
		if s.Name == "" {
			s.Name = fmt.Sprintf("Scenario %d", i+1)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios
}

// ApplyDefaults replaces parameters the user did not give with configured defaults.
// set reports which of the field keys (FieldInitial, ...) were given by the user.
func (c *Config) ApplyDefaults(p Parameters, set map[string]bool) Parameters {
	if c == nil {
		return p
	}
	d := c.Defaults
	if d.Initial != nil && !set[FieldInitial] {
		p.Initial = *d.Initial
	}
	if d.Monthly != nil && !set[FieldMonthly] {
		p.Monthly = *d.Monthly
	}
	if d.Rate != nil && !set[FieldRate] {
		p.RatePercent = *d.Rate
	}
	if d.Years != nil && !set[FieldYears] {
		p.Years = *d.Years
	}
	return p
}

// GenerateConfigTemplate creates a config template listing the given scenarios
func GenerateConfigTemplate(scenarios []Scenario) *Config {
	cfg := &Config{}
	for _, s := range scenarios {
		cfg.Scenarios = append(cfg.Scenarios, ScenarioEntry{
			Name:    s.Name,
			Initial: s.Parameters.Initial,
			Monthly: s.Parameters.Monthly,
			Rate:    s.Parameters.RatePercent,
			Years:   s.Parameters.Years,
		})
	}
	return cfg
}
