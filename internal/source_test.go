package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestIsKnownSource(t *testing.T) {
	RegisterSource("test-format", SourceFunc(func(path string) ([]Scenario, error) {
		return nil, nil
	}))

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"registered in test", "test-format", true},
		{"built-in json", "simple-json", true},
		{"built-in yaml", "yaml", true},
		{"built-in xlsx", "xlsx", true},
		{"unknown", "csv", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKnownSource(tt.input); got != tt.expected {
				t.Errorf("IsKnownSource(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFileArg(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedFormat string
		expectedPath   string
	}{
		{"with known format prefix", "yaml:plans.txt", "yaml", "plans.txt"},
		{"no prefix", "plans.json", "", "plans.json"},
		{"unknown prefix treated as path", "unknown:plans.json", "", "unknown:plans.json"},
		{"windows path with drive letter", "C:\\Users\\test\\plans.xlsx", "", "C:\\Users\\test\\plans.xlsx"},
		{"format prefix with absolute path", "xlsx:/home/user/plans.bin", "xlsx", "/home/user/plans.bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFormat, gotPath := ParseFileArg(tt.input)
			if gotFormat != tt.expectedFormat {
				t.Errorf("ParseFileArg(%q) format = %q, want %q", tt.input, gotFormat, tt.expectedFormat)
			}
			if gotPath != tt.expectedPath {
				t.Errorf("ParseFileArg(%q) path = %q, want %q", tt.input, gotPath, tt.expectedPath)
			}
		})
	}
}

func TestDetectSource(t *testing.T) {
	tests := map[string]string{
		"plans.json": "simple-json",
		"plans.YAML": "yaml",
		"plans.yml":  "yaml",
		"plans.xlsx": "xlsx",
		"plans.csv":  "",
		"plans":      "",
	}
	for path, want := range tests {
		if got := DetectSource(path); got != want {
			t.Errorf("DetectSource(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestGetSource_Unknown(t *testing.T) {
	if _, err := GetSource("csv"); err == nil {
		t.Error("expected error for unknown source")
	}
}

func TestLoadScenarios_JSON(t *testing.T) {
	path := writeFile(t, "plans.json", `{
  "scenarios": [
    {"name": "Long", "monthly": 100, "rate": 7, "years": 40},
    {"monthly": 200, "rate": 7, "years": 20}
  ]
}`)

	scenarios, err := LoadScenarios(path)
	if err != nil {
		t.Fatalf("LoadScenarios failed: %v", err)
	}
	if len(scenarios) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(scenarios))
	}
	if scenarios[0].Name != "Long" || scenarios[0].Parameters.Years != 40 {
		t.Errorf("unexpected first scenario: %+v", scenarios[0])
	}
	if scenarios[1].Name != "Scenario 2" {
		t.Errorf("unnamed scenario got %q", scenarios[1].Name)
	}
}

func TestLoadScenarios_YAMLWithPrefix(t *testing.T) {
	path := writeFile(t, "plans.txt", `
scenarios:
  - name: Pension
    initial: 10000
    monthly: 1500
    rate: 6.5
    years: 30
`)

	if _, err := LoadScenarios(path); err == nil {
		t.Error("expected error for undetectable format without prefix")
	}

	scenarios, err := LoadScenarios("yaml:" + path)
	if err != nil {
		t.Fatalf("LoadScenarios failed: %v", err)
	}
	want := Parameters{Initial: 10000, Monthly: 1500, RatePercent: 6.5, Years: 30}
	if len(scenarios) != 1 || scenarios[0].Parameters != want {
		t.Errorf("unexpected scenarios: %+v", scenarios)
	}
}

func TestLoadScenarios_InvalidJSON(t *testing.T) {
	path := writeFile(t, "broken.json", `{"scenarios": [`)
	if _, err := LoadScenarios(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Savings plans"},
		{},
		{"Years", "Rate", "Name", "Monthly", "Initial"},
		{40, "7%", "Long", 100, nil},
		{},
		{"20", "7", "", "200", "0"},
		{"ten", "5", "Broken", "abc", "1000"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	f.Close()

	scenarios, err := LoadScenarios(path)
	if err != nil {
		t.Fatalf("LoadScenarios failed: %v", err)
	}
	if len(scenarios) != 3 {
		t.Fatalf("expected 3 scenarios, got %d: %+v", len(scenarios), scenarios)
	}

	want := []Scenario{
		{Name: "Long", Parameters: Parameters{Monthly: 100, RatePercent: 7, Years: 40}},
		{Name: "Scenario 2", Parameters: Parameters{Monthly: 200, RatePercent: 7, Years: 20}},
		{Name: "Broken", Parameters: Parameters{Initial: 1000, RatePercent: 5}},
	}
	for i := range want {
		if scenarios[i] != want[i] {
			t.Errorf("scenario %d = %+v, want %+v", i, scenarios[i], want[i])
		}
	}
}

func TestLoadXLSX_MissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	f := excelize.NewFile()
	row := []interface{}{"Name", "Rate"}
	f.SetSheetRow("Sheet1", "A1", &row)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	f.Close()

	if _, err := LoadXLSX(path); err == nil {
		t.Error("expected error for missing columns")
	}
}
